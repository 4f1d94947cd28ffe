package model

import "time"

// LikedPost is the membership row: its presence is the source of truth
// for "user liked post". Post.Likes is kept in step with it.
type LikedPost struct {
	UserID    string    `json:"userId"    bson:"user_id"`
	PostID    string    `json:"postId"    bson:"post_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
