package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/ravandpay/creditmock/internal/database"
	"github.com/ravandpay/creditmock/internal/handlers"
	"github.com/ravandpay/creditmock/internal/services"
	"github.com/ravandpay/creditmock/internal/store"
)

// @title Credit Ledger Mock API
// @version 1.0
// @description Mock credit-account and payment ledger for the cardholder business API
// @host localhost:3000
// @schemes http

func main() {
	// Initialize config
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	db := database.InitDatabase()
	defer db.Close()

	ledgerStore := store.NewSQLStore(db)
	creditService := services.NewCreditService(ledgerStore)

	creditHandler := handlers.NewCreditHandler(creditService)
	tokenHandler := handlers.NewTokenHandler()

	router := handlers.NewRouter(creditHandler, tokenHandler)

	port := viper.GetString("server.port")
	if port == "" {
		port = "3000"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Mock server running on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
