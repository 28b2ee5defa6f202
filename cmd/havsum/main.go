package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/artemijrodionov/haversine/internal/cli"
)

func main() {
	_ = godotenv.Load()

	os.Exit(cli.ExecuteSum(os.Args))
}
