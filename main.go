package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"feed_workspace/bootstrap"
	"feed_workspace/configs"
	"feed_workspace/database"
	_ "feed_workspace/docs"
	"feed_workspace/internal/middleware"
	"feed_workspace/internal/repository"
	"feed_workspace/internal/routes"
	"feed_workspace/model"
)

// @title        feed_workspace API
// @version      1.0
// @description  Social feed backend: posts, likes, comments, moderation.
// @BasePath     /api
func main() {
	cfg := configs.Load()

	// --- MongoDB Connection ---
	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Fiber App Setup ---
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.Auth(cfg.JWTSecret, cfg.TokenCookie,
		func(c *fiber.Ctx, token string) (model.User, error) {
			return repository.FindUserByToken(c.Context(), db, token)
		}))

	routes.Register(app, routes.Deps{DB: db, Cfg: cfg})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
