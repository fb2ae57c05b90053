package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/app"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/config"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
