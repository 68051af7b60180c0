package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gojoins/adapters/memory"
	"gojoins/adapters/postgres"
	"gojoins/app"
	"gojoins/internal/config"
	"gojoins/ports"
	"gojoins/ui"
)

func main() {
	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	store := memory.NewSampleStore()

	var repo ports.SampleRepository
	if cfg.HasDatabase() {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		repo = postgres.NewSampleRepository(db)
		log.Println("Durable sample storage enabled")
	} else {
		log.Println("No DATABASE_URL set, running cache-only")
	}

	service := app.NewJoinsService(store, repo)
	sweeper := app.NewSweepService(store, cfg.Sweep.Concurrency)

	server := ui.NewApp(service, sweeper)
	log.Printf("Starting joins server on :%s", cfg.Server.Port)
	if err := server.Start(ui.Config{Port: cfg.Server.Port}); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
