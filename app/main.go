package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"passenger/config"
	"passenger/middleware"
	"passenger/services/passenger/delivery"
	"passenger/services/passenger/repository"
	"passenger/services/passenger/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, reading configuration from environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	app.Use(middleware.Recovery())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	db, err := config.BootDB(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}
	defer db.Close()

	token, err := config.GetVerifierToken()
	if err != nil {
		log.Fatalf("Failed to load verifier token: %v", err)
		return
	}

	verifierTimeout := config.GetVerifierTimeout()

	passengerRepo := repository.NewPassengerRepository(db)
	verifier := repository.NewCPFVerifier(config.GetVerifierEndpoint(), *token, verifierTimeout)

	passengerUC := usecase.NewPassengerUseCase(passengerRepo, 10*time.Second)
	verificationUC := usecase.NewVerificationUseCase(verifier, verifierTimeout)

	delivery.NewPassengerHandler(app, passengerUC)
	delivery.NewVerificationHandler(app, verificationUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
