package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"streaky/internal/config"
	"streaky/internal/db"
	"streaky/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting Streaky application...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	database, err := db.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize server
	srv := server.New(cfg, database)

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		s := <-signals
		log.Printf("Received signal: %v", s)
		cancel()
	}()

	// Start the server
	go func() {
		if err := srv.Start(ctx); err != nil {
			log.Printf("Error running server: %v", err)
			cancel()
		}
	}()

	// Wait for shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received")

	// Perform cleanup
	if err := srv.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Closing database connection...")
	database.Close()

	log.Println("Application shutdown complete")
}
