package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/fittrack/exercise-track-backend/internal/config"
	"github.com/fittrack/exercise-track-backend/internal/database"
	"github.com/fittrack/exercise-track-backend/internal/handlers"
	"github.com/fittrack/exercise-track-backend/internal/middleware"
	"github.com/fittrack/exercise-track-backend/internal/observability"
	"github.com/fittrack/exercise-track-backend/internal/repository/mongodb"
	"github.com/fittrack/exercise-track-backend/internal/routes"
	"github.com/fittrack/exercise-track-backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	client, db, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.Disconnect(client)

	// Unique index on users.name closes the duplicate-username race
	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal("Failed to ensure MongoDB indexes: ", err)
	}
	log.Println("✅ MongoDB indexes ensured")

	// Connect to Redis (rate limiting + user-list cache)
	log.Printf("Connecting to Redis...")
	redisClient, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
	defer redisClient.Close()

	// Wire repositories, services, handlers
	userRepo := mongodb.NewUserRepository(db)
	exerciseRepo := mongodb.NewExerciseRepository(db)
	userCache := services.NewUserListCache(redisClient)
	userService := services.NewUserService(userRepo, userCache)
	exerciseService := services.NewExerciseService(exerciseRepo, userService)
	handler := handlers.New(userService, exerciseService)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(observability.Middleware)
	r.Use(middleware.RateLimit(redisClient))
	if cfg.IsProduction() {
		log.Println("✅ Running in production mode")
	}

	// Health check and metrics (no rate limit concerns here)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", observability.MetricsHandler())

	routes.SetupRoutes(r, handler)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  GET  /metrics")
	log.Println("  POST /api/exercise/new-user")
	log.Println("  GET  /api/exercise/users")
	log.Println("  POST /api/exercise/add")
	log.Println("  GET  /api/exercise/log")

	log.Printf("🚀 Exercise tracker backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
