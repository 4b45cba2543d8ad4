package main

import (
	"context"
	"fmt"
	"os"

	"formgate/internal/config/env"
	"formgate/internal/db"
)

func main() {
	// Load environment variables
	if err := env.LoadEnv(); err != nil {
		fmt.Printf("Failed to load environment: %v\n", err)
	}

	// Initialize database
	client, err := db.Initialize()
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	// Initialize already runs the auto migration; run it once more
	// explicitly so a failed partial migration surfaces here.
	if err := client.Schema.Create(context.Background()); err != nil {
		fmt.Printf("Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations completed successfully")
}
