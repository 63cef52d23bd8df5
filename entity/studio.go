package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Studio struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner    primitive.ObjectID `bson:"owner" json:"owner"`
	Name     string             `bson:"name" json:"name"`
	Projects []ProjectRef       `bson:"projects" json:"projects"`
}

type ProjectRef struct {
	ProjectID primitive.ObjectID `bson:"projectId" json:"projectId"`
}
