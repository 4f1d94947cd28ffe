package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/internal/repository"
	"feed_workspace/model"
)

// ToggleLike flips the caller's like on a post. Insert-first: the
// unique membership index decides atomically whether this is a like or
// an unlike, so two concurrent toggles from the same user cannot both
// take the like path. The counter is only touched when a membership
// write actually changed a row, which keeps it equal to the membership
// count.
func ToggleLike(ctx context.Context, db *mongo.Database, userID, postID string) (liked bool, err error) {
	if _, err := repository.FindPostByID(ctx, db, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, ErrPostNotFound
		}
		return false, err
	}

	dup, err := repository.InsertLike(ctx, db, model.LikedPost{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}

	if dup {
		// already liked -> unlike
		removed, err := repository.RemoveLike(ctx, db, userID, postID)
		if err != nil {
			return true, err
		}
		if removed {
			if err := repository.IncPostLikes(ctx, db, postID, -1); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	if err := repository.IncPostLikes(ctx, db, postID, 1); err != nil {
		return true, err
	}
	return true, nil
}

// Unlike removes the caller's like explicitly. Removing a like that is
// not there is a no-op, and the counter only moves when a membership
// row was actually deleted.
func Unlike(ctx context.Context, db *mongo.Database, userID, postID string) error {
	if _, err := repository.FindPostByID(ctx, db, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}

	removed, err := repository.RemoveLike(ctx, db, userID, postID)
	if err != nil {
		return err
	}
	if removed {
		return repository.IncPostLikes(ctx, db, postID, -1)
	}
	return nil
}
