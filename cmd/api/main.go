// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/johnbekele/pokojowo-web-project/internal/auth"
	"github.com/johnbekele/pokojowo-web-project/internal/common/database"
	"github.com/johnbekele/pokojowo-web-project/internal/config"
	"github.com/johnbekele/pokojowo-web-project/internal/matching"
	notifications "github.com/johnbekele/pokojowo-web-project/internal/notification"
)

var startTime = time.Now()

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Pokojowo Flatmate Matching API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Println("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect to PostgreSQL
	log.Println("\n🗄️  Step 4: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL successfully")

	// 5. Connect to Redis (optional)
	log.Println("\n📮 Step 5: Connecting to Redis...")
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without cache", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		log.Println("⚠️  Redis URL not configured, skipping Redis connection")
	}

	// 6. Run database migrations
	log.Println("\n🔨 Step 6: Running database migrations...")
	if err := runMigrations(db); err != nil {
		log.Fatal("❌ Failed to run migrations: ", err)
	}
	log.Println("✅ Database migrations completed")

	// 7. Initialize email delivery
	log.Println("\n📧 Step 7: Initializing email delivery...")
	var emailSender notifications.EmailSender
	switch cfg.EmailProvider {
	case "sendgrid":
		emailSender = notifications.NewSendGridEmailSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
		log.Println("   ✅ Using SendGrid for emails")
	case "smtp":
		emailSender = notifications.NewSMTPEmailSender(
			cfg.SMTPHost,
			fmt.Sprintf("%d", cfg.SMTPPort),
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.EmailFrom,
			cfg.EmailFromName,
		)
		log.Println("   ✅ Using SMTP for emails")
	default:
		emailSender = notifications.NewMockEmailSender()
		log.Println("   ⚠️  Using mock email sender (development mode)")
	}

	// 8. Initialize Matching module
	log.Println("\n🤝 Step 8: Initializing Matching module...")
	engine, err := matching.NewEngine(matching.DefaultWeights())
	if err != nil {
		log.Fatal("❌ Failed to construct matching engine:", err)
	}

	matchingRepo := matching.NewPostgresRepository(db)

	var notifier matching.Notifier
	if cfg.EnableEmailNotifications {
		notifier = matching.NewEmailNotifier(emailSender)
	}

	matchingService := matching.NewService(matchingRepo, engine, redisClient, cfg.MatchCacheTTL, notifier)
	matchingHandler := matching.NewHandler(matchingService)
	log.Println("✅ Matching module initialized")

	// 9. Set up routes
	log.Println("\n🛣️  Step 9: Setting up routes...")
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/api", apiInfo).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)
	matching.RegisterRoutes(router, matchingHandler, authMiddleware)
	log.Println("   ✅ Matching routes registered")

	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 10. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// apiInfo returns API information
func apiInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{
		"name": "Pokojowo Flatmate Matching API",
		"version": "1.0.0",
		"status": "running",
		"endpoints": {
			"health": "GET /health",
			"metrics": "GET /metrics",
			"matching": {
				"list": "GET /api/v1/matching",
				"withUser": "GET /api/v1/matching/user/{userId}",
				"refresh": "POST /api/v1/matching/refresh",
				"stats": "GET /api/v1/matching/stats/summary",
				"dashboard": "GET /api/v1/matching/dashboard",
				"notify": "POST /api/v1/matching/notify"
			}
		}
	}`))
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Printf("→ %s %s from %s", r.Method, r.RequestURI, r.RemoteAddr)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// runMigrations creates the users table when it does not exist yet.
func runMigrations(db *sqlx.DB) error {
	log.Println("   - Checking existing tables...")

	var userTableExists bool
	err := db.QueryRow(`
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = 'users'
		)
	`).Scan(&userTableExists)
	if err != nil {
		return fmt.Errorf("failed to check existing tables: %w", err)
	}

	if userTableExists {
		log.Println("   - Users table already exists, skipping")
		return nil
	}

	log.Println("   - Creating users table...")
	_, err = db.Exec(`
		CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

		CREATE TABLE users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(50) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			firstname VARCHAR(100),
			lastname VARCHAR(100),
			photo TEXT,
			age INTEGER,
			gender VARCHAR(20),
			bio TEXT,
			location VARCHAR(255),
			languages TEXT[] NOT NULL DEFAULT '{}',
			tenant_profile JSONB,
			is_profile_complete BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX idx_users_profile_complete ON users (is_profile_complete) WHERE is_profile_complete;
		CREATE INDEX idx_users_location ON users (LOWER(location));
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	return nil
}
