package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/model"
)

func InsertUser(ctx context.Context, db *mongo.Database, u model.User) error {
	_, err := db.Collection("users").InsertOne(ctx, u)
	return err
}

func FindUserByID(ctx context.Context, db *mongo.Database, userID string) (model.User, error) {
	var u model.User
	err := db.Collection("users").FindOne(ctx, bson.M{"user_id": userID}).Decode(&u)
	return u, err
}

func FindUserByUsername(ctx context.Context, db *mongo.Database, username string) (model.User, error) {
	var u model.User
	err := db.Collection("users").FindOne(ctx, bson.M{"username": username}).Decode(&u)
	return u, err
}

// FindUserByToken is the identity-resolution lookup: the stored
// access_token is the source of truth for "who is this caller".
func FindUserByToken(ctx context.Context, db *mongo.Database, token string) (model.User, error) {
	var u model.User
	err := db.Collection("users").FindOne(ctx, bson.M{"access_token": token}).Decode(&u)
	return u, err
}

func SetAccessToken(ctx context.Context, db *mongo.Database, userID, token string) error {
	res, err := db.Collection("users").UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"access_token": token}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func PushUserPost(ctx context.Context, db *mongo.Database, userID, postID string) error {
	res, err := db.Collection("users").UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$push": bson.M{"posts": postID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func PullUserPost(ctx context.Context, db *mongo.Database, userID, postID string) error {
	_, err := db.Collection("users").UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$pull": bson.M{"posts": postID}})
	return err
}
