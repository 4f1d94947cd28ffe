package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/dto"
	mid "feed_workspace/internal/middleware"
	"feed_workspace/services"
)

// CreatePostHandler godoc
// @Summary      Create a post
// @Description  Create a new post; it starts in verifyStatus "pending"
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        data  body      dto.CreatePostDTO  true  "Post payload"
// @Success      201   {object}  dto.CreatePostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts [post]
func CreatePostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreatePostDTO
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid body")
		}
		if err := body.Validate(); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		postID, err := services.CreatePost(ctx, db, body)
		if err != nil {
			return respondErr(c, err)
		}

		return c.Status(fiber.StatusCreated).
			JSON(dto.CreatePostResponse{PostID: postID, Status: "success"})
	}
}

// VerifyPostHandler godoc
// @Summary      Set a post's moderation status
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        data  body      dto.VerifyPostDTO  true  "postId and new status"
// @Success      200   {object}  dto.VerifyPostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/verify [patch]
func VerifyPostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.VerifyPostDTO
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid body")
		}
		if err := body.Validate(); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := services.VerifyPost(ctx, db, body); err != nil {
			return respondErr(c, err)
		}

		return c.JSON(dto.VerifyPostResponse{VerifiedPostID: body.PostID, Status: "success"})
	}
}

// GetPostHandler godoc
// @Summary      Get one post
// @Tags         posts
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  dto.PostDetail
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId} [get]
func GetPostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := c.Params("postId")
		if postID == "" {
			return badRequest(c, "missing postId")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		post, err := services.GetPost(ctx, db, postID)
		if err != nil {
			return respondErr(c, err)
		}

		return c.JSON(fiber.Map{"status": "success", "post": post})
	}
}

// GetPostsHandler godoc
// @Summary      List posts by moderation status
// @Description  Feed for the calling user; every row carries a liked flag
// @Tags         posts
// @Produce      json
// @Param        verifyStatus  query     string  true  "pending | approved | rejected"
// @Success      200           {object}  map[string]any
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      401           {object}  dto.ErrorResponse
// @Router       /posts [get]
func GetPostsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := mid.UserFromLocals(c)
		if !ok {
			return respondErr(c, services.ErrUnauthorized)
		}

		status := c.Query("verifyStatus", "approved")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		posts, err := services.GetPosts(ctx, db, status, viewer)
		if err != nil {
			return respondErr(c, err)
		}

		return c.JSON(fiber.Map{"posts": posts, "status": "success"})
	}
}

// GetUserPostsHandler godoc
// @Summary      List one author's posts
// @Tags         posts
// @Produce      json
// @Param        userId  path      string  true  "Author's user id"
// @Success      200     {object}  map[string]any
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /users/{userId}/posts [get]
func GetUserPostsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		if userID == "" {
			return badRequest(c, "missing userId")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		posts, err := services.GetUserPosts(ctx, db, userID)
		if err != nil {
			return respondErr(c, err)
		}

		return c.JSON(fiber.Map{"posts": posts, "status": "success"})
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post
// @Description  Cascades to the post's comments, likes and the author's post list
// @Tags         posts
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  map[string]any
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId} [delete]
func DeletePostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := c.Params("postId")
		if postID == "" {
			return badRequest(c, "missing postId")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := services.DeletePost(ctx, db, postID); err != nil {
			return respondErr(c, err)
		}

		return c.JSON(fiber.Map{"deletedPostId": postID, "status": "success"})
	}
}
