package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"feed_workspace/dto"
	"feed_workspace/model"
)

// ===== MongoDB stage/keyword constants =====
const (
	StageMatch   = "$match"
	StageLookup  = "$lookup"
	StageUnwind  = "$unwind"
	StageProject = "$project"
	StageSort    = "$sort"

	KeyFrom         = "from"
	KeyLocalField   = "localField"
	KeyForeignField = "foreignField"
	KeyAs           = "as"
)

func InsertPost(ctx context.Context, db *mongo.Database, p model.Post) error {
	_, err := db.Collection("posts").InsertOne(ctx, p)
	return err
}

func FindPostByID(ctx context.Context, db *mongo.Database, postID string) (model.Post, error) {
	var p model.Post
	err := db.Collection("posts").FindOne(ctx, bson.M{"post_id": postID}).Decode(&p)
	return p, err
}

func UpdateVerifyStatus(ctx context.Context, db *mongo.Database, postID, status string) error {
	res, err := db.Collection("posts").UpdateOne(ctx,
		bson.M{"post_id": postID},
		bson.M{"$set": bson.M{"verify_status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func DeletePostByID(ctx context.Context, db *mongo.Database, postID string) (bool, error) {
	res, err := db.Collection("posts").DeleteOne(ctx, bson.M{"post_id": postID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// IncPostLikes bumps the denormalized counter. Decrements are guarded
// so the counter can never go below zero even if a stray unlike slips
// through.
func IncPostLikes(ctx context.Context, db *mongo.Database, postID string, delta int) error {
	filter := bson.M{"post_id": postID}
	if delta < 0 {
		filter["likes"] = bson.M{"$gt": 0}
	}
	_, err := db.Collection("posts").UpdateOne(ctx, filter,
		bson.M{"$inc": bson.M{"likes": delta}})
	return err
}

func PushPostComment(ctx context.Context, db *mongo.Database, postID, commentID string) error {
	res, err := db.Collection("posts").UpdateOne(ctx,
		bson.M{"post_id": postID},
		bson.M{"$push": bson.M{"comments": commentID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func PullPostComment(ctx context.Context, db *mongo.Database, postID, commentID string) error {
	_, err := db.Collection("posts").UpdateOne(ctx,
		bson.M{"post_id": postID},
		bson.M{"$pull": bson.M{"comments": commentID}})
	return err
}

func ListPostsByAuthor(ctx context.Context, db *mongo.Database, userID string) ([]model.Post, error) {
	cur, err := db.Collection("posts").Find(ctx,
		bson.M{"author": userID},
		options.Find().SetSort(bson.D{{Key: "datetime", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []model.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FeedPipeline builds the verified-feed aggregation: posts with the
// requested status newest-first, author joined from users, comment
// count derived from the comments collection (not the denormalized
// array, which can lag behind).
func FeedPipeline(status string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"verify_status": status}}},
		{{Key: StageSort, Value: bson.D{{Key: "datetime", Value: -1}}}},

		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "users",
			KeyLocalField:   "author",
			KeyForeignField: "user_id",
			KeyAs:           "author_doc",
		}}},
		{{Key: StageUnwind, Value: bson.M{"path": "$author_doc", "preserveNullAndEmptyArrays": true}}},

		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "comments",
			KeyLocalField:   "post_id",
			KeyForeignField: "post_id",
			KeyAs:           "post_comments",
		}}},

		{{Key: StageProject, Value: bson.M{
			"post_id":        1,
			"content":        1,
			"img_url":        1,
			"datetime":       1,
			"likes":          1,
			"verify_status":  1,
			"comments":       1,
			"comments_count": bson.M{"$size": "$post_comments"},
			"author": bson.M{
				"user_id":  "$author_doc.user_id",
				"username": "$author_doc.username",
				"name":     "$author_doc.name",
				"surname":  "$author_doc.surname",
			},
		}}},
	}
}

func ListFeed(ctx context.Context, db *mongo.Database, status string) ([]dto.FeedPost, error) {
	cur, err := db.Collection("posts").Aggregate(ctx, FeedPipeline(status))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []dto.FeedPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
