package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/model"
	"feed_workspace/services"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T, knownToken string) *fiber.App {
	t.Helper()

	resolve := func(c *fiber.Ctx, token string) (model.User, error) {
		if token == knownToken {
			return model.User{UserID: "user-123", Username: "jdoe"}, nil
		}
		return model.User{}, mongo.ErrNoDocuments
	}

	app := fiber.New()
	app.Use(Auth(testSecret, "accessToken", resolve))
	app.Get("/who", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		return c.JSON(fiber.Map{"uid": uid})
	})
	return app
}

func TestAuthAnonymousPassesThrough(t *testing.T) {
	app := newTestApp(t, "irrelevant")

	resp, err := app.Test(httptest.NewRequest("GET", "/who", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200 for anonymous request", resp.StatusCode)
	}
}

func TestAuthResolvesCookieToken(t *testing.T) {
	token, err := services.IssueToken(testSecret, "user-123")
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, token)

	req := httptest.NewRequest("GET", "/who", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthResolvesBearerToken(t *testing.T) {
	token, err := services.IssueToken(testSecret, "user-123")
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, token)

	req := httptest.NewRequest("GET", "/who", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthRejectsBadSignature(t *testing.T) {
	forged, err := services.IssueToken("other-secret", "user-123")
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, forged)

	req := httptest.NewRequest("GET", "/who", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for forged token", resp.StatusCode)
	}
}

func TestAuthRejectsRevokedToken(t *testing.T) {
	// signed with our key, but the resolver knows a different token
	stale, err := services.IssueToken(testSecret, "user-123")
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, "some-other-token")

	req := httptest.NewRequest("GET", "/who", nil)
	req.Header.Set("Authorization", "Bearer "+stale)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for revoked token", resp.StatusCode)
	}
}
