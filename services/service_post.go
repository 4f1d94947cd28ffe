package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/dto"
	"feed_workspace/internal/repository"
	"feed_workspace/model"
)

// CreatePost inserts the post and pushes its id onto the author's post
// list. The two writes are not a transaction; if the second fails the
// post is rolled back (best-effort) so no orphan is left behind.
func CreatePost(ctx context.Context, db *mongo.Database, body dto.CreatePostDTO) (string, error) {
	if _, err := repository.FindUserByID(ctx, db, body.Author); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	post := model.Post{
		PostID:       uuid.NewString(),
		Content:      body.Content,
		ImgURL:       body.ImgURL,
		Author:       body.Author,
		Datetime:     time.Now().UTC(),
		Likes:        0,
		VerifyStatus: model.VerifyPending,
		Comments:     []string{},
	}

	if err := repository.InsertPost(ctx, db, post); err != nil {
		return "", err
	}

	if err := repository.PushUserPost(ctx, db, post.Author, post.PostID); err != nil {
		_, _ = db.Collection("posts").DeleteOne(ctx, bson.M{"post_id": post.PostID})
		return "", err
	}

	return post.PostID, nil
}

func VerifyPost(ctx context.Context, db *mongo.Database, body dto.VerifyPostDTO) error {
	if !model.ValidVerifyStatus(body.VerifyStatus) {
		return ErrInvalidVerifyStatus
	}
	if err := repository.UpdateVerifyStatus(ctx, db, body.PostID, body.VerifyStatus); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

func GetPost(ctx context.Context, db *mongo.Database, postID string) (dto.PostDetail, error) {
	var detail dto.PostDetail

	post, err := repository.FindPostByID(ctx, db, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return detail, ErrPostNotFound
		}
		return detail, err
	}

	author, err := repository.FindUserByID(ctx, db, post.Author)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return detail, err
	}

	commentIDs, err := repository.CommentIDsForPost(ctx, db, post.PostID)
	if err != nil {
		return detail, err
	}

	detail = dto.PostDetail{
		PostID:       post.PostID,
		Content:      post.Content,
		ImgURL:       post.ImgURL,
		Datetime:     post.Datetime,
		Likes:        post.Likes,
		VerifyStatus: post.VerifyStatus,
		Author:       dto.AuthorFromUser(author),
		Comments:     commentIDs,
	}
	return detail, nil
}

// GetPosts lists the feed for one moderation status, flagging each post
// the viewer has liked.
func GetPosts(ctx context.Context, db *mongo.Database, status string, viewer model.User) ([]dto.FeedPost, error) {
	if !model.ValidVerifyStatus(status) {
		return nil, ErrInvalidVerifyStatus
	}

	posts, err := repository.ListFeed(ctx, db, status)
	if err != nil {
		return nil, err
	}

	liked, err := repository.LikedSet(ctx, db, viewer.UserID)
	if err != nil {
		return nil, err
	}

	return markLiked(posts, liked), nil
}

func markLiked(posts []dto.FeedPost, liked map[string]bool) []dto.FeedPost {
	for i := range posts {
		posts[i].Liked = liked[posts[i].PostID]
	}
	return posts
}

// GetUserPosts returns one author's posts newest-first. Unlike the feed
// there is no liked flag or comment count on these rows.
func GetUserPosts(ctx context.Context, db *mongo.Database, userID string) ([]dto.PostDetail, error) {
	author, err := repository.FindUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	posts, err := repository.ListPostsByAuthor(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	profile := dto.AuthorFromUser(author)
	out := make([]dto.PostDetail, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.PostDetail{
			PostID:       p.PostID,
			Content:      p.Content,
			ImgURL:       p.ImgURL,
			Datetime:     p.Datetime,
			Likes:        p.Likes,
			VerifyStatus: p.VerifyStatus,
			Author:       profile,
			Comments:     p.Comments,
		})
	}
	return out, nil
}

// DeletePost removes the post and cascades to its comments, its like
// rows and the author's denormalized post list, so no dangling
// references survive the delete.
func DeletePost(ctx context.Context, db *mongo.Database, postID string) error {
	post, err := repository.FindPostByID(ctx, db, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}

	deleted, err := repository.DeletePostByID(ctx, db, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}

	if err := repository.DeleteCommentsForPost(ctx, db, postID); err != nil {
		return err
	}
	if err := repository.DeleteLikesForPost(ctx, db, postID); err != nil {
		return err
	}
	return repository.PullUserPost(ctx, db, post.Author, postID)
}
