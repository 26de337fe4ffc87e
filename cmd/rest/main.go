package main

import (
	"context"
	"log"

	"tg-notegraph-be/internal/bootstrap"
	"tg-notegraph-be/internal/config"
	"tg-notegraph-be/internal/server"
	"tg-notegraph-be/internal/tracer"
	"tg-notegraph-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	var gormDB *gorm.DB
	var err error
	if cfg.Database.Driver == "sqlite" {
		gormDB, err = database.NewSQLiteDB(cfg.Database.SQLitePath)
	} else {
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
