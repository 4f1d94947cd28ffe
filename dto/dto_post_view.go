package dto

import (
	"time"

	"feed_workspace/model"
)

// AuthorProfile is the public projection of a user: everything private
// (password, email, roles, posts, access token) stays behind.
type AuthorProfile struct {
	UserID   string `json:"userId"   bson:"user_id"`
	Username string `json:"username" bson:"username"`
	Name     string `json:"name"     bson:"name"`
	Surname  string `json:"surname"  bson:"surname"`
}

func AuthorFromUser(u model.User) AuthorProfile {
	return AuthorProfile{
		UserID:   u.UserID,
		Username: u.Username,
		Name:     u.Name,
		Surname:  u.Surname,
	}
}

// FeedPost is one row of the verified-feed listing: post fields joined
// with the author profile and a per-viewer liked flag.
type FeedPost struct {
	PostID        string        `json:"postId"        bson:"post_id"`
	Content       string        `json:"content"       bson:"content"`
	ImgURL        string        `json:"imgUrl"        bson:"img_url"`
	Datetime      time.Time     `json:"datetime"      bson:"datetime"`
	Likes         int           `json:"likes"         bson:"likes"`
	VerifyStatus  string        `json:"verifyStatus"  bson:"verify_status"`
	Comments      []string      `json:"comments"      bson:"comments"`
	Author        AuthorProfile `json:"author"        bson:"author"`
	CommentsCount int64         `json:"commentsCount" bson:"comments_count"`
	Liked         bool          `json:"liked"         bson:"-"`
}

// PostDetail is the single-post view: comment ids come newest-first
// from the comments collection, not from the denormalized array.
type PostDetail struct {
	PostID       string        `json:"postId"`
	Content      string        `json:"content"`
	ImgURL       string        `json:"imgUrl"`
	Datetime     time.Time     `json:"datetime"`
	Likes        int           `json:"likes"`
	VerifyStatus string        `json:"verifyStatus"`
	Author       AuthorProfile `json:"author"`
	Comments     []string      `json:"comments"`
}

type CommentView struct {
	CommentID string        `json:"commentId"`
	Content   string        `json:"content"`
	PostID    string        `json:"postId"`
	Datetime  time.Time     `json:"datetime"`
	Author    AuthorProfile `json:"author"`
}
