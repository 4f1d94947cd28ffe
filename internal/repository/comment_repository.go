package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"feed_workspace/model"
)

func InsertComment(ctx context.Context, db *mongo.Database, c model.Comment) error {
	_, err := db.Collection("comments").InsertOne(ctx, c)
	return err
}

// CommentIDsForPost returns the comment ids of a post newest-first,
// read from the comments collection itself.
func CommentIDsForPost(ctx context.Context, db *mongo.Database, postID string) ([]string, error) {
	cur, err := db.Collection("comments").Find(ctx,
		bson.M{"post_id": postID},
		options.Find().
			SetSort(bson.D{{Key: "datetime", Value: -1}}).
			SetProjection(bson.M{"comment_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []model.Comment
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CommentID)
	}
	return ids, nil
}

func FindCommentsByIDs(ctx context.Context, db *mongo.Database, ids []string) ([]model.Comment, error) {
	cur, err := db.Collection("comments").Find(ctx,
		bson.M{"comment_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "datetime", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []model.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes the comment and hands it back so the caller
// can clean up the parent post's comment list.
func DeleteComment(ctx context.Context, db *mongo.Database, commentID string) (model.Comment, error) {
	var c model.Comment
	err := db.Collection("comments").
		FindOneAndDelete(ctx, bson.M{"comment_id": commentID}).
		Decode(&c)
	return c, err
}

func DeleteCommentsForPost(ctx context.Context, db *mongo.Database, postID string) error {
	_, err := db.Collection("comments").DeleteMany(ctx, bson.M{"post_id": postID})
	return err
}
