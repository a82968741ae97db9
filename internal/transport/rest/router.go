package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"sbindex/internal/repository"
	"sbindex/internal/service"
	"sbindex/internal/transport/rest/handler"
	"sbindex/internal/transport/rest/middleware"
	"sbindex/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	DiagnosisService *service.DiagnosisService
	KnowledgeService *service.KnowledgeService
	UserRepo         repository.UserRepo
	SurveySaveRepo   repository.SurveySaveRepo
	EEGSaveRepo      repository.EEGSaveRepo
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	catalogHandler := handler.NewCatalogHandler(c.DiagnosisService)
	diagnosisHandler := handler.NewDiagnosisHandler(c.DiagnosisService)
	saveHandler := handler.NewSaveHandler(c.SurveySaveRepo, c.EEGSaveRepo)
	knowledgeHandler := handler.NewKnowledgeHandler(c.KnowledgeService)
	userHandler := handler.NewUserHandler(c.UserRepo)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/check-email", authHandler.CheckEmail).Methods("GET", "OPTIONS")
	v1.HandleFunc("/items", catalogHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/items/validate", catalogHandler.Validate).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/admin/progress", wsHandler.AdminProgressWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/me", authHandler.Me).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/score", diagnosisHandler.Score).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/analyze-combined", diagnosisHandler.AnalyzeCombined).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/analyze-sbi", diagnosisHandler.AnalyzeSBI).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/diagnosis/run", diagnosisHandler.RunPipeline).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/diagnosis/latest", diagnosisHandler.Latest).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/surveys/saves", saveHandler.CreateSurveySave).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/surveys/saves", saveHandler.ListSurveySaves).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/surveys/saves/{saveId}", saveHandler.GetSurveySave).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/eeg/saves", saveHandler.CreateEEGSave).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/eeg/saves", saveHandler.ListEEGSaves).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/eeg/saves/{saveId}", saveHandler.GetEEGSave).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/knowledge/search", knowledgeHandler.Search).Methods("GET", "OPTIONS")

	// Admin routes
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/admin/users", userHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/users/{email}", userHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/admin/knowledge", knowledgeHandler.Add).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
