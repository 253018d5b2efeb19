package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/mongo"

	"smartbot-stats/internal/api"
	"smartbot-stats/internal/config"
	"smartbot-stats/internal/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Sentry (if DSN is provided)
	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		Release:          cfg.Version,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		Debug:            cfg.Debug,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	// Creating context for application lifecycle
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to both stores before accepting any traffic. Either
	// failure refuses startup.
	log.Println("Connecting to the activity store")
	activityClient, activityDB, err := database.Connect(ctx, cfg.MongoURL)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatalf("Failed to connect to activity store: %v", err)
	}
	defer disconnect(activityClient, "activity store")

	log.Println("Connecting to the moderation store")
	moderationClient, moderationDB, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatalf("Failed to connect to moderation store: %v", err)
	}
	defer disconnect(moderationClient, "moderation store")

	// Create repositories and wire up the HTTP surface
	handler := api.NewHandler(
		database.NewMongoActivityRepository(activityDB),
		database.NewMongoBanRepository(moderationDB),
		database.NewMongoAdminRepository(moderationDB),
		cfg.IndexFile,
	)

	app := api.NewApp(cfg.Prefork)
	api.RegisterRoutes(app, handler)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			sentry.CaptureException(err)
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for context cancellation (e.g., SIGINT, SIGTERM)
	<-ctx.Done()

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during server shutdown: %v", err)
		sentry.CaptureException(err)
	}
	log.Println("Server shutdown complete.")
}

// disconnect releases one store's client, reporting but not failing on
// errors since the process is already exiting.
func disconnect(client *mongo.Client, name string) {
	if err := client.Disconnect(context.Background()); err != nil {
		log.Printf("Error disconnecting from %s: %v", name, err)
		sentry.CaptureException(err)
	} else {
		log.Printf("Disconnected from %s.", name)
	}
}
