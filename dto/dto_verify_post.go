package dto

import "errors"

type VerifyPostDTO struct {
	PostID       string `json:"postId" validate:"required"`
	VerifyStatus string `json:"verifyStatus" validate:"required,oneof=pending approved rejected"`
}

func (d VerifyPostDTO) Validate() error {
	if d.PostID == "" {
		return errors.New("postId is required")
	}
	if d.VerifyStatus == "" {
		return errors.New("verifyStatus is required")
	}
	return nil
}

type VerifyPostResponse struct {
	VerifiedPostID string `json:"verifiedPostId"`
	Status         string `json:"status" example:"success"`
}
