package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"stocktrack/internal/database"
	"stocktrack/internal/httpserver"
	"stocktrack/internal/logger"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()
	dsn := os.Getenv("DATABASE_URL")
	db, err := database.Open(dsn, lg)
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	if dsn == "" {
		if err := database.SeedDemo(db, lg); err != nil {
			lg.Fatalw("demo seed failed", "error", err)
		}
	}
	if err := database.SeedOwner(db, lg); err != nil {
		lg.Fatalw("owner seed failed", "error", err)
	}
	router := httpserver.NewRouter(db, lg)
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	lg.Infow("listening", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
