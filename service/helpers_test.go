package service_test

import (
	"context"

	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/store"
)

func insertUser(s store.Store, firstName, lastName string) *entity.User {
	u := &entity.User{
		ID:        primitive.NewObjectID(),
		Email:     firstName + "." + lastName + "@example.com",
		Password:  "hashed",
		FirstName: firstName,
		LastName:  lastName,
		Role:      "user",
	}
	err := s.Users().Insert(context.Background(), u)
	Expect(err).To(BeNil())

	return u
}

func insertStudio(s store.Store, owner primitive.ObjectID) *entity.Studio {
	st := &entity.Studio{
		ID:       primitive.NewObjectID(),
		Owner:    owner,
		Name:     "Test studio",
		Projects: []entity.ProjectRef{},
	}
	err := s.Studios().Insert(context.Background(), st)
	Expect(err).To(BeNil())

	return st
}

func insertTeam(s store.Store, studioID primitive.ObjectID, members ...entity.TeamMember) *entity.Team {
	t := &entity.Team{
		ID:       primitive.NewObjectID(),
		StudioID: studioID,
		Name:     "Test team",
		Members:  members,
	}
	err := s.Teams().Insert(context.Background(), t)
	Expect(err).To(BeNil())

	return t
}
