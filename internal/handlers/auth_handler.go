package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/configs"
	"feed_workspace/dto"
	mid "feed_workspace/internal/middleware"
	"feed_workspace/services"
)

// RegisterHandler godoc
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.RegisterDTO  true  "New user"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func RegisterHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterDTO
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid body")
		}
		if err := body.Validate(); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := services.Register(ctx, db, body)
		if err != nil {
			return respondErr(c, err)
		}

		return c.Status(fiber.StatusCreated).
			JSON(fiber.Map{"status": "success", "user": dto.AuthorFromUser(user)})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Issues an access token and sets it as a cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginDTO  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func LoginHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginDTO
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid body")
		}
		if err := body.Validate(); err != nil {
			return badRequest(c, err.Error())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		token, user, err := services.Login(ctx, db, cfg.JWTSecret, body)
		if err != nil {
			return respondErr(c, err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     cfg.TokenCookie,
			Value:    token,
			Expires:  time.Now().Add(72 * time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(dto.LoginResponse{
			Status:      "success",
			AccessToken: token,
			User:        dto.AuthorFromUser(user),
		})
	}
}

// WhoamiHandler godoc
// @Summary      The calling user's public profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /whoami [get]
func WhoamiHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := mid.UserFromLocals(c)
		if !ok {
			return respondErr(c, services.ErrUnauthorized)
		}
		return c.JSON(fiber.Map{"status": "success", "user": dto.AuthorFromUser(user)})
	}
}
