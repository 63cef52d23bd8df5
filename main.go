package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"studio-backend/events"
	"studio-backend/log"
	"studio-backend/router"
	"studio-backend/service"
	"studio-backend/store"
)

func envOrDefaultString(env, def string) string {
	if val, ok := os.LookupEnv(env); ok {
		return val
	}

	return def
}

func main() {
	_ = godotenv.Load()
	log.EnsureLogger()
	defer log.Logger.Sync()

	listenAddr := envOrDefaultString("PORT", "8000")
	mongoAddr := envOrDefaultString("MONGO_URI", "mongodb://localhost:27017")
	jwtKey := envOrDefaultString("JWT_KEY", "test-key")
	amqpAddr := os.Getenv("RABBITMQ_CONNSTRING")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoAddr))
	if err != nil {
		log.Logger.Fatal("failed connecting to database", zap.Error(err))
	}

	var ev service.ProjectEvents = service.NopEvents{}
	if amqpAddr != "" {
		publisher, err := events.Dial(amqpAddr)
		if err != nil {
			log.Logger.Fatal("failed connecting to rabbitmq", zap.Error(err))
		}
		defer publisher.Close()
		ev = publisher
	}

	r := router.New(router.Config{
		Store:       store.Mongo(client),
		Events:      ev,
		JWTKey:      []byte(jwtKey),
		CORSOrigins: os.Getenv("CORS_ORIGINS"),
	})

	log.Logger.Info(fmt.Sprintf("Listening on port: %s", listenAddr))
	if err := r.Run(fmt.Sprintf("0.0.0.0:%s", listenAddr)); err != nil {
		log.Logger.Fatal("server stopped", zap.Error(err))
	}
}
