package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"oracle-manager-api/config"
	"oracle-manager-api/migrations"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	migrator := migrations.NewMigrator(db)
	for _, migration := range migrations.GetTeamMigrations() {
		migrator.AddMigration(migration)
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			log.Fatal("Migration failed:", err)
		}
	case "rollback":
		batches := 1
		if len(os.Args) > 2 {
			if b, err := strconv.Atoi(os.Args[2]); err == nil {
				batches = b
			}
		}
		if err := migrator.Rollback(batches); err != nil {
			log.Fatal("Rollback failed:", err)
		}
	case "status":
		showStatus(migrator)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate migrate            - Run pending migrations")
	fmt.Println("  go run ./cmd/migrate rollback [batches] - Rollback migrations (default: 1)")
	fmt.Println("  go run ./cmd/migrate status             - Show migration status")
}

func showStatus(migrator *migrations.Migrator) {
	records := migrator.Status()

	if len(records) == 0 {
		fmt.Println("No migrations have been run yet.")
		return
	}

	fmt.Println("Migration Status:")
	fmt.Println("Batch | Name")
	fmt.Println("------|-----")
	for _, record := range records {
		fmt.Printf("%-5d | %s\n", record.Batch, record.Name)
	}
}
