package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgPipelineStage MessageType = "pipeline_stage"
	MsgError         MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// StagePayload is the body of a pipeline_stage message
type StagePayload struct {
	Stage     string  `json:"stage"`
	ElapsedMS float64 `json:"elapsedMs"`
}

// Hub manages admin progress WebSocket connections. Every connected admin
// receives every pipeline stage event.
type Hub struct {
	conns map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one admin WebSocket connection
type Connection struct {
	Email string
	Send  chan []byte
	Hub   *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = true
			h.mu.Unlock()
			log.Printf("Admin %s connected to progress feed", conn.Email)

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn] {
				delete(h.conns, conn)
				close(conn.Send)
				log.Printf("Admin %s disconnected from progress feed", conn.Email)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// PipelineStage pushes a stage completion event to every connected admin
// (implements pipeline.Broadcaster).
func (h *Hub) PipelineStage(stage string, elapsedMS float64) {
	data, _ := json.Marshal(StagePayload{Stage: stage, ElapsedMS: elapsedMS})
	h.broadcast <- &Message{
		Type:    MsgPipelineStage,
		Payload: data,
	}
}
