package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Anamitraroy22/school-management/config"
	"github.com/Anamitraroy22/school-management/database"
	"github.com/Anamitraroy22/school-management/routes"
	"github.com/Anamitraroy22/school-management/store"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Get(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Best effort: a failed migration/seed must not block startup,
	// the server can run against a pre-existing schema.
	if !database.EnsureSchema(db) {
		log.Println("warning: schema initialization incomplete")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, store.NewGormStore(db))

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
