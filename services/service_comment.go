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

// AddComment inserts the comment and pushes its id onto the post's
// comment list, rolling the insert back if the push fails.
func AddComment(ctx context.Context, db *mongo.Database, body dto.AddCommentDTO) (string, error) {
	if _, err := repository.FindPostByID(ctx, db, body.PostID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrPostNotFound
		}
		return "", err
	}

	comment := model.Comment{
		CommentID: uuid.NewString(),
		Content:   body.Content,
		Author:    body.Author,
		PostID:    body.PostID,
		Datetime:  time.Now().UTC(),
	}

	if err := repository.InsertComment(ctx, db, comment); err != nil {
		return "", err
	}

	if err := repository.PushPostComment(ctx, db, comment.PostID, comment.CommentID); err != nil {
		_, _ = db.Collection("comments").DeleteOne(ctx, bson.M{"comment_id": comment.CommentID})
		return "", err
	}

	return comment.PostID, nil
}

// GetComments resolves a batch of comment ids newest-first. Authors are
// attached as public profiles only; ids that resolve to nothing are
// simply absent from the result.
func GetComments(ctx context.Context, db *mongo.Database, ids []string) ([]dto.CommentView, error) {
	comments, err := repository.FindCommentsByIDs(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	profiles := make(map[string]dto.AuthorProfile, len(comments))
	views := make([]dto.CommentView, 0, len(comments))
	for _, c := range comments {
		profile, ok := profiles[c.Author]
		if !ok {
			author, err := repository.FindUserByID(ctx, db, c.Author)
			if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			profile = dto.AuthorFromUser(author)
			profiles[c.Author] = profile
		}
		views = append(views, dto.CommentView{
			CommentID: c.CommentID,
			Content:   c.Content,
			PostID:    c.PostID,
			Datetime:  c.Datetime,
			Author:    profile,
		})
	}
	return views, nil
}

// DeleteComment removes the comment and pulls its id out of the parent
// post's comment list.
func DeleteComment(ctx context.Context, db *mongo.Database, commentID string) error {
	comment, err := repository.DeleteComment(ctx, db, commentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCommentNotFound
		}
		return err
	}
	return repository.PullPostComment(ctx, db, comment.PostID, comment.CommentID)
}
