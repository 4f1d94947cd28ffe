package services

import (
	"errors"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("test-secret", "user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	uid, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if uid != "user-123" {
		t.Errorf("uid = %q, want user-123", uid)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("test-secret", "user-123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken("other-secret", token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("wrong secret: err = %v, want ErrUnauthorized", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseToken("test-secret", tok); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("ParseToken(%q): err = %v, want ErrUnauthorized", tok, err)
		}
	}
}
