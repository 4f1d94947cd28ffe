package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/configs"
	"feed_workspace/internal/handlers"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	DB  *mongo.Database
	Cfg configs.Config
}

// Register mounts all HTTP routes in one place.
// Keep paths lowercase, grouped by resource, and easy to discover.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	// ============================================================
	// Auth
	// ============================================================
	auth := api.Group("/auth")

	// POST /api/auth/register
	// Example:
	//   curl -X POST http://localhost:1337/api/auth/register \
	//   -H "Content-Type: application/json" \
	//   -d '{"username":"jdoe","name":"John","surname":"Doe","email":"j@d.io","password":"secret123"}'
	auth.Post("/register", handlers.RegisterHandler(d.DB))

	// POST /api/auth/login → sets the accessToken cookie
	auth.Post("/login", handlers.LoginHandler(d.DB, d.Cfg))

	// GET /api/whoami
	api.Get("/whoami", handlers.WhoamiHandler())

	// ============================================================
	// Posts
	// ============================================================
	posts := api.Group("/posts")

	// POST /api/posts
	// Example:
	//   curl -X POST http://localhost:1337/api/posts \
	//   -H "Content-Type: application/json" \
	//   -d '{"content":"hello","imgUrl":"http://img","author":"<userId>"}'
	posts.Post("/", handlers.CreatePostHandler(d.DB))

	// GET /api/posts?verifyStatus=approved  (needs the accessToken cookie)
	posts.Get("/", handlers.GetPostsHandler(d.DB))

	// PATCH /api/posts/verify
	posts.Patch("/verify", handlers.VerifyPostHandler(d.DB))

	// GET /api/posts/:postId
	posts.Get("/:postId", handlers.GetPostHandler(d.DB))

	// DELETE /api/posts/:postId
	posts.Delete("/:postId", handlers.DeletePostHandler(d.DB))

	// POST /api/posts/:postId/like    → toggle
	// DELETE /api/posts/:postId/like  → explicit unlike
	posts.Post("/:postId/like", handlers.LikePostHandler(d.DB))
	posts.Delete("/:postId/like", handlers.DeleteLikeHandler(d.DB))

	// GET /api/users/:userId/posts
	api.Get("/users/:userId/posts", handlers.GetUserPostsHandler(d.DB))

	// ============================================================
	// Comments
	// ============================================================
	comments := api.Group("/comments")

	comments.Post("/", handlers.AddCommentHandler(d.DB))

	// GET /api/comments?ids=id1,id2
	comments.Get("/", handlers.GetCommentsHandler(d.DB))

	comments.Delete("/:commentId", handlers.DeleteCommentHandler(d.DB))

	// ============================================================
	// Misc
	// ============================================================

	// Health check
	// GET /api/healthz → "ok"
	api.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
