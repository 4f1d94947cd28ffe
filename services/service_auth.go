package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"feed_workspace/dto"
	"feed_workspace/internal/repository"
	"feed_workspace/model"
)

const tokenTTL = 72 * time.Hour

type accessClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

func Register(ctx context.Context, db *mongo.Database, body dto.RegisterDTO) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	u := model.User{
		UserID:   uuid.NewString(),
		Username: body.Username,
		Name:     body.Name,
		Surname:  body.Surname,
		Email:    body.Email,
		Password: string(hash),
		Roles:    []string{"user"},
		Posts:    []string{},
	}

	if err := repository.InsertUser(ctx, db, u); err != nil {
		if repository.IsDup(err) {
			return model.User{}, ErrUserExists
		}
		return model.User{}, err
	}
	return u, nil
}

// Login checks the password, mints a fresh token and persists it as the
// user's access_token, which is what like/listing operations resolve.
func Login(ctx context.Context, db *mongo.Database, secret string, body dto.LoginDTO) (string, model.User, error) {
	user, err := repository.FindUserByUsername(ctx, db, body.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", model.User{}, ErrInvalidCredentials
		}
		return "", model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return "", model.User{}, ErrInvalidCredentials
	}

	token, err := IssueToken(secret, user.UserID)
	if err != nil {
		return "", model.User{}, err
	}
	if err := repository.SetAccessToken(ctx, db, user.UserID, token); err != nil {
		return "", model.User{}, err
	}

	user.AccessToken = token
	return token, user, nil
}

func IssueToken(secret, userID string) (string, error) {
	now := time.Now().UTC()
	claims := accessClaims{
		UID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates the signature and returns the uid claim. Only
// HMAC HS256 is accepted.
func ParseToken(secret, tokenStr string) (string, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrUnauthorized
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}

	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	if uid == "" {
		return "", ErrUnauthorized
	}
	return uid, nil
}
