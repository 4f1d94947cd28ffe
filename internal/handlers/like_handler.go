package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	mid "feed_workspace/internal/middleware"
	"feed_workspace/services"
)

// LikePostHandler godoc
// @Summary      Toggle a like on a post
// @Description  First call likes, second call unlikes; safe under concurrent calls
// @Tags         likes
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  map[string]any
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId}/like [post]
func LikePostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDFromLocals(c)
		if err != nil {
			return respondErr(c, services.ErrUnauthorized)
		}

		postID := c.Params("postId")
		if postID == "" {
			return badRequest(c, "missing postId")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		liked, err := services.ToggleLike(ctx, db, uid, postID)
		if err != nil {
			return respondErr(c, err)
		}

		return c.JSON(fiber.Map{"status": "success", "liked": liked})
	}
}

// DeleteLikeHandler godoc
// @Summary      Remove a like from a post
// @Description  Removes the membership row and decrements the counter together
// @Tags         likes
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  map[string]any
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId}/like [delete]
func DeleteLikeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := mid.UIDFromLocals(c)
		if err != nil {
			return respondErr(c, services.ErrUnauthorized)
		}

		postID := c.Params("postId")
		if postID == "" {
			return badRequest(c, "missing postId")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := services.Unlike(ctx, db, uid, postID); err != nil {
			return respondErr(c, err)
		}

		return c.JSON(fiber.Map{"status": "success", "liked": false})
	}
}
