package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"feed_workspace/services"
)

func TestRespondErrMapsKinds(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrPostNotFound, fiber.StatusNotFound},
		{services.ErrUserNotFound, fiber.StatusNotFound},
		{services.ErrCommentNotFound, fiber.StatusNotFound},
		{services.ErrUnauthorized, fiber.StatusUnauthorized},
		{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{services.ErrInvalidVerifyStatus, fiber.StatusBadRequest},
		{services.ErrUserExists, fiber.StatusConflict},
		{errors.New("connection lost"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			return respondErr(c, tc.err)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != tc.want {
			t.Errorf("%v: status = %d, want %d", tc.err, resp.StatusCode, tc.want)
		}

		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body["status"] != "error" {
			t.Errorf("%v: envelope status = %v, want error", tc.err, body["status"])
		}
		if body["error"] == "" || body["error"] == nil {
			t.Errorf("%v: envelope has no error message", tc.err)
		}
	}
}
