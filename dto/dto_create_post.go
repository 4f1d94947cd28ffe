package dto

import "errors"

// ===== Request =====
type CreatePostDTO struct {
	Content string `json:"content" validate:"required"`
	ImgURL  string `json:"imgUrl"`
	Author  string `json:"author" validate:"required"`
}

func (d CreatePostDTO) Validate() error {
	if d.Content == "" {
		return errors.New("content is required")
	}
	if d.Author == "" {
		return errors.New("author is required")
	}
	return nil
}

// ===== Success Response =====
type CreatePostResponse struct {
	PostID string `json:"postId" example:"6f1c1a2b-9d3e-4c5f-8a7b-0e1d2c3b4a59"`
	Status string `json:"status" example:"success"`
}

// ===== Error Response =====
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  string `json:"error"  example:"post not found"`
}
