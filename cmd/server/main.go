package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/invopipe/invoice-ingest/internal/gateway"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice"
	"github.com/invopipe/invoice-ingest/internal/shared/infrastructure/config"
	"github.com/invopipe/invoice-ingest/internal/shared/infrastructure/database"
	"github.com/invopipe/invoice-ingest/pkg/migration"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	var db *sqlx.DB
	if cfg.Database.Enabled {
		log.Println("Connecting to DB...")
		var err error
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer db.Close()
		log.Printf("Database Connected Successfully!")

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		if err := migration.AutoMigrate(cfg.Database.URL(), "migrations", logger); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		var err error
		redisClient, err = database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	}

	invoiceModule, err := invoice.NewModule(ctx, cfg, db, redisClient)
	if err != nil {
		log.Fatalf("Failed to initialize invoice module: %v", err)
	}

	handler := gateway.SetupRoutes(gateway.RouterConfig{
		UploadHandler:  invoiceModule.HTTPHandler(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
