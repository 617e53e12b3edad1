package main

import (
	"fmt"
	"log"
	"os"

	"takatrack-client/internal/storage"

	"github.com/joho/godotenv"
)

// Creates the client_kv table used by STORAGE_DRIVER=postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := storage.Connect(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	var keys int
	if err := db.Get(&keys, `SELECT COUNT(*) FROM client_kv`); err != nil {
		log.Fatalf("Failed to query summary: %v", err)
	}

	fmt.Println("\n============================================================")
	fmt.Println("MIGRATION SUMMARY")
	fmt.Println("============================================================")
	fmt.Printf("Table:                   client_kv\n")
	fmt.Printf("Stored keys:             %d\n", keys)
	fmt.Println("============================================================")
}
