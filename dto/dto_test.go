package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"feed_workspace/model"
)

func TestCreatePostDTOValidate(t *testing.T) {
	if err := (CreatePostDTO{Content: "hi", Author: "u1"}).Validate(); err != nil {
		t.Fatalf("valid DTO rejected: %v", err)
	}
	if err := (CreatePostDTO{Author: "u1"}).Validate(); err == nil {
		t.Error("missing content accepted")
	}
	if err := (CreatePostDTO{Content: "hi"}).Validate(); err == nil {
		t.Error("missing author accepted")
	}
}

func TestAddCommentDTOValidate(t *testing.T) {
	if err := (AddCommentDTO{Content: "c", Author: "u1", PostID: "p1"}).Validate(); err != nil {
		t.Fatalf("valid DTO rejected: %v", err)
	}
	if err := (AddCommentDTO{Author: "u1", PostID: "p1"}).Validate(); err == nil {
		t.Error("missing content accepted")
	}
	long := strings.Repeat("x", 2001)
	if err := (AddCommentDTO{Content: long, Author: "u1", PostID: "p1"}).Validate(); err == nil {
		t.Error("oversized content accepted")
	}
}

func TestRegisterDTOValidate(t *testing.T) {
	ok := RegisterDTO{Username: "jdoe", Name: "John", Surname: "Doe", Email: "j@d.io", Password: "secret123"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid DTO rejected: %v", err)
	}
	short := ok
	short.Password = "short"
	if err := short.Validate(); err == nil {
		t.Error("short password accepted")
	}
}

// The author object attached to comments and posts must never leak
// credentials, no matter what the user record holds.
func TestAuthorFromUserStripsPrivateFields(t *testing.T) {
	u := model.User{
		UserID:      "u1",
		Username:    "jdoe",
		Name:        "John",
		Surname:     "Doe",
		Email:       "j@d.io",
		Password:    "$2a$10$hash",
		Roles:       []string{"admin"},
		AccessToken: "tok",
		Posts:       []string{"p1"},
	}

	raw, err := json.Marshal(AuthorFromUser(u))
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"password", "email", "roles", "posts", "accessToken", "access_token"} {
		if _, leaked := fields[key]; leaked {
			t.Errorf("author profile leaks %q", key)
		}
	}
	if fields["userId"] != "u1" || fields["username"] != "jdoe" {
		t.Errorf("public fields missing from profile: %v", fields)
	}
}
