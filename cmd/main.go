package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fathima-sithara/alert-service/internal/config"
	"github.com/fathima-sithara/alert-service/internal/database"
	"github.com/fathima-sithara/alert-service/internal/handlers"
	"github.com/fathima-sithara/alert-service/internal/repository"
	"github.com/fathima-sithara/alert-service/internal/server"
	"github.com/fathima-sithara/alert-service/internal/services"
	"github.com/fathima-sithara/alert-service/internal/utils"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := utils.NewLogger(cfg.App.Env)
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()
	sugar.Infof("Starting alert-service in %s environment on port %d", cfg.App.Env, cfg.App.Port)

	// The server stays up even when the first ping fails; /test reports
	// connectivity and store calls fail per request until Mongo is back.
	db, mongoClient, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, sugar)
	if err != nil && mongoClient == nil {
		sugar.Fatalf("invalid MongoDB configuration: %v", err)
	}

	userRepo := repository.NewMongoUserRepo(db, cfg.Collections.User)
	contactRepo := repository.NewMongoContactRepo(db, cfg.Collections.Contact)
	alertRepo := repository.NewMongoAlertRepo(db, cfg.Collections.Alert)

	userSvc := services.NewUserService(userRepo, contactRepo, sugar)
	alertSvc := services.NewAlertService(userRepo, alertRepo, sugar)

	h := handlers.NewHandler(userSvc, alertSvc, db, sugar)
	app := server.New(cfg, h, logger)

	go func() {
		listenAddr := fmt.Sprintf(":%d", cfg.App.Port)
		sugar.Infof("Server listening on %s", listenAddr)
		if err := app.Listen(listenAddr); err != nil {
			sugar.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	sugar.Info("Shutting down server...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		sugar.Errorf("Fiber app shutdown error: %v", err)
	}
	if err := mongoClient.Disconnect(ctxShut); err != nil {
		sugar.Errorf("MongoDB disconnect error: %v", err)
	}

	sugar.Info("Graceful shutdown complete")
}
