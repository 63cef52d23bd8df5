package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudioID primitive.ObjectID `bson:"studioId" json:"studioId"`
	Name     string             `bson:"name" json:"name"`
	Team     []TeamRef          `bson:"team" json:"team"`
	ExpireAt time.Time          `bson:"expireAt" json:"expireAt"`
}

type TeamRef struct {
	TeamID primitive.ObjectID `bson:"teamId" json:"teamId"`
}
