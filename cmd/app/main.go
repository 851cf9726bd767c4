package main

import (
	"context"
	"fmt"
	"log"

	"royalestats/internal/application/usecase"
	"royalestats/internal/config"
	"royalestats/internal/infrastructure/cache"
	"royalestats/internal/infrastructure/clashroyale"
	"royalestats/internal/infrastructure/repository"
	"royalestats/internal/infrastructure/security"
	"royalestats/internal/middleware"
	handlers "royalestats/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(&repository.UserGorm{}); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	if cfg.ClashAPIKey == "" {
		// Not fatal: the key is checked lazily per request, the process
		// still serves auth and stored data without it.
		log.Println("CLASH_API_KEY not set, player tag linking will fail until configured")
	}

	userRepo := repository.NewUserRepository(db)
	tokenCache := cache.NewTokenCache(rdb)
	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)
	statsClient := clashroyale.NewClient(cfg.ClashAPIURL, cfg.ClashAPIKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenCache, hasher, tokenManager)
	playerUseCase := usecase.NewPlayerUseCase(userRepo, statsClient)

	rateLimiter := middleware.NewRateLimiter(rdb)
	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(playerUseCase)

	router := handlers.NewRouter(authHandler, userHandler, rateLimiter, authUseCase, cfg.AllowedOrigins)

	log.Printf("Royale stats server running on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
