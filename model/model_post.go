package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	VerifyPending  = "pending"
	VerifyApproved = "approved"
	VerifyRejected = "rejected"
)

// ValidVerifyStatus reports whether s is one of the three moderation states.
func ValidVerifyStatus(s string) bool {
	return s == VerifyPending || s == VerifyApproved || s == VerifyRejected
}

type Post struct {
	ID           bson.ObjectID `json:"-"            bson:"_id,omitempty"`
	PostID       string        `json:"postId"       bson:"post_id"`
	Content      string        `json:"content"      bson:"content"`
	ImgURL       string        `json:"imgUrl"       bson:"img_url"`
	Author       string        `json:"author"       bson:"author"`
	Datetime     time.Time     `json:"datetime"     bson:"datetime"`
	Likes        int           `json:"likes"        bson:"likes"`
	VerifyStatus string        `json:"verifyStatus" bson:"verify_status"`
	Comments     []string      `json:"comments"     bson:"comments"`
}
