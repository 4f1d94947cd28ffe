package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/dto"
	"feed_workspace/services"
)

// AddCommentHandler godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        data  body      dto.AddCommentDTO  true  "Comment payload"
// @Success      201   {object}  dto.AddCommentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /comments [post]
func AddCommentHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AddCommentDTO
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid body")
		}
		if err := body.Validate(); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		postID, err := services.AddComment(ctx, db, body)
		if err != nil {
			return respondErr(c, err)
		}

		return c.Status(fiber.StatusCreated).
			JSON(dto.AddCommentResponse{CommentedPostID: postID, Status: "success"})
	}
}

// GetCommentsHandler godoc
// @Summary      Resolve a batch of comment ids
// @Description  Authors are public profiles only, never credentials
// @Tags         comments
// @Produce      json
// @Param        ids  query     string  true  "Comma-separated comment ids"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /comments [get]
func GetCommentsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("ids")
		if raw == "" {
			return badRequest(c, "ids query parameter is required")
		}

		var ids []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return badRequest(c, "ids query parameter is required")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		comments, err := services.GetComments(ctx, db, ids)
		if err != nil {
			return respondErr(c, err)
		}

		return c.JSON(fiber.Map{"comments": comments, "status": "success"})
	}
}

// DeleteCommentHandler godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  map[string]any
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /comments/{commentId} [delete]
func DeleteCommentHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		commentID := c.Params("commentId")
		if commentID == "" {
			return badRequest(c, "missing commentId")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := services.DeleteComment(ctx, db, commentID); err != nil {
			return respondErr(c, err)
		}

		return c.JSON(fiber.Map{"deletedCommentId": commentID, "status": "success"})
	}
}
