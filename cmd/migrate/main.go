package main

import (
	"log"
	"os"

	"tg-notegraph-be/internal/model"
	"tg-notegraph-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	// 2. Connect to Database using existing GORM helpers
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn != "" {
		db, err = database.NewGormDBFromDSN(dsn)
	} else {
		sqlitePath := os.Getenv("DB_SQLITE_PATH")
		if sqlitePath == "" {
			log.Fatal("Error: neither DB_CONNECTION_STRING nor DB_SQLITE_PATH is set")
		}
		db, err = database.NewSQLiteDB(sqlitePath)
	}
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (postgres only; sqlite silently skips)
	if dsn != "" {
		log.Println("Step 1: Setting up Extensions...")
		setupSQL := []string{
			`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
			`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		}
		for _, sql := range setupSQL {
			if err := db.Exec(sql).Error; err != nil {
				log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
			}
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
