package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sbindex/internal/cache"
	"sbindex/internal/catalog"
	"sbindex/internal/config"
	"sbindex/internal/eeg"
	"sbindex/internal/pipeline"
	"sbindex/internal/repository"
	"sbindex/internal/scoring"
	"sbindex/internal/service"
	"sbindex/internal/transport/rest"
	"sbindex/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if !cfg.HasJWTSecret() {
		log.Println("Warning: JWT_SECRET not set, using development default")
	}

	// Survey item catalog
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load survey catalog: ", err)
	}
	if v := cat.Validate(); !v.IsValid {
		log.Printf("Warning: catalog integrity check failed: missing=%v extra=%v", v.Missing, v.Extra)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDBName)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	diagnosisRepo := repository.NewDiagnosisRepo(db)
	surveySaveRepo := repository.NewSurveySaveRepo(db)
	eegSaveRepo := repository.NewEEGSaveRepo(db)
	knowledgeRepo := repository.NewKnowledgeRepo(db)

	// Initialize caches
	resultCache := cache.NewResultCache(rdb)
	knowledgeCache := cache.NewKnowledgeCache(rdb)

	// Initialize services
	engine := scoring.NewEngine(cat)
	provider := eeg.NewMockProvider()
	authSvc := service.NewAuthService(userRepo)
	knowledgeSvc := service.NewKnowledgeService(knowledgeRepo, knowledgeCache)

	runner := pipeline.NewRunner(engine, provider, knowledgeSvc)
	runner.SetBroadcaster(wsHub)

	diagnosisSvc := service.NewDiagnosisService(
		cat, engine, provider, runner, knowledgeSvc,
		diagnosisRepo, resultCache, time.Now().UnixNano(),
	)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		DiagnosisService: diagnosisSvc,
		KnowledgeService: knowledgeSvc,
		UserRepo:         userRepo,
		SurveySaveRepo:   surveySaveRepo,
		EEGSaveRepo:      eegSaveRepo,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/items")
		log.Println("  POST /v1/score")
		log.Println("  POST /v1/analyze-sbi")
		log.Println("  POST /v1/diagnosis/run")
		log.Println("  GET  /v1/diagnosis/latest")
		log.Println("  GET  /v1/knowledge/search")
		log.Println("  WS   /v1/ws/admin/progress")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
