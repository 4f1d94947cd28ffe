package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"-"         bson:"_id,omitempty"`
	CommentID string        `json:"commentId" bson:"comment_id"`
	Content   string        `json:"content"   bson:"content"`
	Author    string        `json:"author"    bson:"author"`
	PostID    string        `json:"postId"    bson:"post_id"`
	Datetime  time.Time     `json:"datetime"  bson:"datetime"`
}
