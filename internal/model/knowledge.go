package model

import "time"

// Knowledge source types as stored by the collectors
const (
	SourceBlog    = "블로그"
	SourceYoutube = "유튜브"
)

// KnowledgeRow is one collected blog post or video transcript.
// Rows are unique by URL.
type KnowledgeRow struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SourceType string    `json:"sourceType" bson:"sourceType"`
	Title      string    `json:"title" bson:"title"`
	Content    string    `json:"content,omitempty" bson:"content,omitempty"`
	URL        string    `json:"url" bson:"url"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// KnowledgeRef is the title+url pair surfaced in reports and recommendations
type KnowledgeRef struct {
	Title string `json:"title" bson:"title"`
	URL   string `json:"url" bson:"url"`
}
