package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"bookshelf/internal/collection"
	"bookshelf/internal/store"
	"bookshelf/internal/web"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	dataPath := getEnv("BOOK_DATA", "book_data.json")

	svc, err := collection.NewService(context.Background(), store.NewBookFile(dataPath))
	if err != nil {
		log.Fatalf("cannot open book collection: %v", err)
	}

	router := web.NewRouter(svc)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s (data file %s)", serverAddress, dataPath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
