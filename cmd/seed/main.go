package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/rizkypratama/user-crud-api/config"
	"github.com/rizkypratama/user-crud-api/internal/domain/entity"
	mongoinfra "github.com/rizkypratama/user-crud-api/internal/infrastructure/mongodb"
	"github.com/rizkypratama/user-crud-api/pkg/helpers"
)

// Seeds the user collection with a few sample users for local development.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	client, err := mongoinfra.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongoinfra.NewUserRepository(client.Database(cfg.MongoDatabase), cfg.MongoCollection)

	users := []entity.User{
		{Name: "John Doe", Email: "john.doe@example.com", Password: "Passw0rd!", Phone: "5550001111"},
		{Name: "Jane Smith", Email: "jane.smith@example.com", Password: "S3cure?Pw", Phone: "5550002222"},
		{Name: "Alice Brown", Email: "alice.brown@example.com", Password: "An0ther$Pw", Phone: "5550003333"},
	}
	for i := range users {
		if err := repo.Create(ctx, &users[i]); err != nil {
			helpers.LogError(logger, "seed user failed", err, map[string]interface{}{"email": users[i].Email})
			continue
		}
		logger.Infof("seeded user %s (%s)", users[i].Name, users[i].ID)
	}
}
