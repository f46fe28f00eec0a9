package main

import (
	"context" // context package is needed for Redis operations

	"bank_reporting/internal/api"        // HTTP handlers and router
	"bank_reporting/internal/config"     // Configuration
	"bank_reporting/internal/db"         // Database connection
	"bank_reporting/internal/events"     // Ingest event publishing
	"bank_reporting/internal/repository" // Stores
	"bank_reporting/internal/service"    // Use cases
	"bank_reporting/internal/utils"      // Redis cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	log := cfg.NewLogger()     // Setup logger

	// Connect to the database
	gdb, err := db.Open(cfg, log)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis cache; an empty address disables caching
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
	} else {
		log.Warn("REDIS_ADDR not set, caching disabled")
	}
	cache := utils.NewCache(rdb, cfg.CacheTTL)

	// Setup event publishing; an empty URL disables it
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	} else {
		log.Warn("AMQP_URL not set, ingest events disabled")
	}

	// Wire stores and services
	partnerRepo := repository.NewPartnerRepository(gdb)
	merchantRepo := repository.NewMerchantRepository(gdb)
	txRepo := repository.NewTransactionRepository(gdb)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		DB:           gdb,
		Partners:     service.NewPartnerService(partnerRepo, log),
		Merchants:    service.NewMerchantService(merchantRepo, partnerRepo, log),
		Transactions: service.NewTransactionService(txRepo, merchantRepo, publisher, log),
		Cache:        cache,
		Log:          log,
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		log.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Infof("Server running on %s", cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
