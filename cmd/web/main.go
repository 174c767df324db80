package main

import (
	"ats_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine: config falls back to config.yaml / real env vars.
	_ = godotenv.Load()

	app.Run()
}
