package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"birdies-cafe/internal/config"
	"birdies-cafe/internal/db"
	"birdies-cafe/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply seed: %v", err)
	}
	logger.Printf("seed data applied")
}
