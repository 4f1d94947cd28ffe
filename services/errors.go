package services

import "errors"

// Error kinds the handlers map to transport codes. Anything else that
// bubbles up from the store is treated as an internal failure.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserExists          = errors.New("username or email already taken")
	ErrInvalidVerifyStatus = errors.New("verifyStatus must be pending, approved or rejected")
)
