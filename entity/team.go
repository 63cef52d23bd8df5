package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Team struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudioID primitive.ObjectID `bson:"studioId" json:"studioId"`
	Name     string             `bson:"name" json:"name"`
	Members  []TeamMember       `bson:"members" json:"members"`
}

type TeamMember struct {
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	TeamRole string             `bson:"teamRole" json:"teamRole"`
}
