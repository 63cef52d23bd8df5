package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/errs"
	"studio-backend/store"
)

type StudioService struct {
	store store.Store
}

func NewStudioService(s store.Store) *StudioService {
	return &StudioService{store: s}
}

// Create persists a studio owned by the requester.
func (s *StudioService) Create(ctx context.Context, requester primitive.ObjectID, name string) (*entity.Studio, error) {
	if name == "" {
		ve := errs.NewValidationError()
		ve.Add("name", "name is required")
		return nil, ve
	}

	st := &entity.Studio{
		ID:       primitive.NewObjectID(),
		Owner:    requester,
		Name:     name,
		Projects: []entity.ProjectRef{},
	}

	if err := s.store.Studios().Insert(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *StudioService) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]entity.Studio, error) {
	return s.store.Studios().FindByOwner(ctx, owner)
}

func (s *StudioService) Get(ctx context.Context, requester, id primitive.ObjectID) (*entity.Studio, error) {
	studio, err := s.store.Studios().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(requester, studio); err != nil {
		return nil, err
	}

	return studio, nil
}
