package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/fashioncollab/fashioncollab/db"
	"github.com/fashioncollab/fashioncollab/internal/auth"
	"github.com/fashioncollab/fashioncollab/internal/config"
	"github.com/fashioncollab/fashioncollab/internal/handlers"
	"github.com/fashioncollab/fashioncollab/internal/middleware"
	"github.com/fashioncollab/fashioncollab/internal/router"
	"github.com/fashioncollab/fashioncollab/internal/services"
	"github.com/fashioncollab/fashioncollab/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users := store.NewUserStore(conn)
	projects := store.NewProjectStore(conn)
	memberships := store.NewMembershipStore(conn)

	tokens := auth.NewJWTManager(cfg.JWTSecret)

	projectService := services.NewProjectService(projects, memberships)
	membershipService := services.NewMembershipService(projects, memberships, users)

	r := router.New(router.Handlers{
		Auth:        handlers.NewAuthHandler(users, tokens),
		Projects:    handlers.NewProjectHandler(projectService),
		Memberships: handlers.NewMembershipHandler(membershipService),
	}, middleware.AuthMiddleware(tokens, users), cfg.ClientURL)

	log.Printf("Server starting on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
