package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/model"
)

// IsDup reports whether err is a unique-index violation (code 11000).
func IsDup(err error) bool {
	var we mongo.WriteException
	return errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000
}

// InsertLike inserts a membership row. The unique (user_id, post_id)
// index turns a concurrent double-like into a duplicate error, which
// is reported as dup=true instead of failing the call.
func InsertLike(ctx context.Context, db *mongo.Database, like model.LikedPost) (dup bool, err error) {
	_, err = db.Collection("likedPosts").InsertOne(ctx, like)
	if err == nil {
		return false, nil
	}
	if IsDup(err) {
		return true, nil
	}
	return false, err
}

// RemoveLike deletes the membership row; removed=false means there was
// nothing to remove (the caller had not liked the post).
func RemoveLike(ctx context.Context, db *mongo.Database, userID, postID string) (removed bool, err error) {
	res, err := db.Collection("likedPosts").DeleteOne(ctx,
		bson.M{"user_id": userID, "post_id": postID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// LikedSet returns the ids of every post the user has liked.
func LikedSet(ctx context.Context, db *mongo.Database, userID string) (map[string]bool, error) {
	cur, err := db.Collection("likedPosts").Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []model.LikedPost
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	liked := make(map[string]bool, len(rows))
	for _, row := range rows {
		liked[row.PostID] = true
	}
	return liked, nil
}

func DeleteLikesForPost(ctx context.Context, db *mongo.Database, postID string) error {
	_, err := db.Collection("likedPosts").DeleteMany(ctx, bson.M{"post_id": postID})
	return err
}
