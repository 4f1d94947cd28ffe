package model

import "go.mongodb.org/mongo-driver/v2/bson"

type User struct {
	ID          bson.ObjectID `json:"-"        bson:"_id,omitempty"`
	UserID      string        `json:"userId"   bson:"user_id"`
	Username    string        `json:"username" bson:"username"`
	Name        string        `json:"name"     bson:"name"`
	Surname     string        `json:"surname"  bson:"surname"`
	Email       string        `json:"-"        bson:"email"`
	Password    string        `json:"-"        bson:"password"`
	Roles       []string      `json:"-"        bson:"roles"`
	AccessToken string        `json:"-"        bson:"access_token"`
	Posts       []string      `json:"-"        bson:"posts"`
}
