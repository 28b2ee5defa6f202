package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/artemijrodionov/haversine/internal/cli"
)

func main() {
	// .env is optional; stderr stays quiet so it never mixes with a run's summary
	_ = godotenv.Load()

	os.Exit(cli.ExecuteGenerate(os.Args))
}
