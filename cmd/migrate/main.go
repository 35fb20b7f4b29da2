package main

import (
	"github.com/omgohel/digital-wallet/internal/config" // Custom import path (Config)
	"github.com/omgohel/digital-wallet/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Create the users and transactions tables
	db.Migrate(cfg.DSN())
}
