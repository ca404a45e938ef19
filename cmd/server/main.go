package main

import (
	"github.com/joho/godotenv"

	"hrmlite/internal/app/server"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	server.Run()
}
