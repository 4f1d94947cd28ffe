package dto

import "errors"

type AddCommentDTO struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
	Author  string `json:"author" validate:"required"`
	PostID  string `json:"postId" validate:"required"`
}

func (d AddCommentDTO) Validate() error {
	if d.Content == "" {
		return errors.New("content is required")
	}
	if len(d.Content) > 2000 {
		return errors.New("content too long")
	}
	if d.Author == "" {
		return errors.New("author is required")
	}
	if d.PostID == "" {
		return errors.New("postId is required")
	}
	return nil
}

type AddCommentResponse struct {
	CommentedPostID string `json:"commentedPostId"`
	Status          string `json:"status" example:"success"`
}
