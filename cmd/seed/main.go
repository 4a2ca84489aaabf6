package main

import (
	"context"
	"log"
	"time"

	"omnio_back_end/internal/config"
	"omnio_back_end/internal/database"
	"omnio_back_end/internal/seed"
	"omnio_back_end/internal/store"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	database.EnsureIndexes()
	defer database.CloseMongo()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := seed.Run(ctx, store.New(database.MongoDB)); err != nil {
		log.Fatal("❌ Seed interrompu:", err)
	}
}
