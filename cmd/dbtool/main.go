package main

import (
	"context"
	"database/sql"
	"depot-route-service/internal/adapters/repositories"
	"depot-route-service/internal/config"
	"depot-route-service/internal/platform/db"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx := context.Background()

	var (
		conn *sql.DB
		err  error
	)
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		log.Println("Target: postgres")
		conn, err = db.Open(databaseURL)
	} else {
		sqlitePath := config.Get("SQLITE_PATH", "data/runs.db")
		log.Printf("Target: sqlite path=%s", sqlitePath)
		conn, err = db.OpenSqlite(ctx, sqlitePath)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
