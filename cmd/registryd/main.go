package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"institute-registry-backend/config"
	"institute-registry-backend/internal/api"
	"institute-registry-backend/internal/db"
	"institute-registry-backend/internal/service"
	"institute-registry-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "registry-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Select the repository implementation. Both satisfy the same contract;
	// the relational one delegates id generation and uniqueness to the
	// database, the in-memory one serializes everything behind a lock.
	var (
		institutes store.InstituteStore
		students   store.StudentStore
		names      store.NameStore
	)
	switch cfg.Store.Driver {
	case "memory":
		institutes = store.NewMemInstituteStore()
		students = store.NewMemStudentStore()
		names = store.NewMemNameStore()
		logger.Println("using in-memory stores")
	case "gorm":
		gormDB, err := db.Init(&cfg.Database)
		if err != nil {
			logger.Fatalf("failed to initialize database: %v", err)
		}
		institutes = store.NewGormInstituteStore(gormDB)
		students = store.NewGormStudentStore(gormDB)
		names = store.NewGormNameStore(gormDB)
		logger.Println("database initialized successfully")
	default:
		logger.Fatalf("unknown store driver %q (want gorm or memory)", cfg.Store.Driver)
	}

	// Build the service layer with its entity caches.
	instituteSvc := service.NewInstituteService(institutes, students, cfg.Cache.TTL)
	studentSvc := service.NewStudentService(students, cfg.Cache.TTL)
	nameSvc := service.NewNameService(names, cfg.Cache.TTL)
	logger.Println("services initialized")

	// Initialize router
	router := api.NewRouter(api.NewHandler(instituteSvc, studentSvc, nameSvc), cfg)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
