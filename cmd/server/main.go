package main

import (
	"log"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/config"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/database"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/routes"
)

func main() {
	cfg := config.Load()

	var db *database.Database

	if cfg.Database.Primary.Enable {
		db = database.InitWithFallback(
			cfg.Database.Primary.Driver,
			cfg.Database.Primary.DSN,
			cfg.Database.Fallback.Driver,
			cfg.Database.Fallback.DSN,
		)
	} else if cfg.Database.Fallback.Enable {
		db = database.InitWithFallback(
			cfg.Database.Fallback.Driver,
			cfg.Database.Fallback.DSN,
			"", "",
		)
	} else {
		log.Println("all database connections disabled, starting in-memory")
		db = database.InitWithFallback("sqlite", ":memory:", "", "")
	}

	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("database close failed: %v", err)
		}
	}()

	log.Printf("database info: %+v", db.GetInfo())

	router := routes.SetupRoutes(db.DB, cfg)

	log.Printf("server listening on port %s", cfg.Server.Port)
	log.Fatal(router.Run(":" + cfg.Server.Port))
}
