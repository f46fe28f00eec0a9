package main

import (
	"bank_reporting/internal/config" // Configuration
	"bank_reporting/internal/db"     // Database connection and schema
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	log := cfg.NewLogger()     // Setup logger

	gdb, err := db.Open(cfg, log)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.WithField("driver", cfg.DBDriver).Info("Migration completed")
}
