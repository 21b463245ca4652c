package main

import (
	"log"

	"github.com/joho/godotenv"

	"tableflip.dev/hajz/pkg/commands"
)

func main() {
	// A local .env is optional; real deployments provision HAJZ_* directly.
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
