package service

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/errs"
	"studio-backend/store"
)

type TeamInput struct {
	StudioID primitive.ObjectID
	Name     string
	Members  []entity.TeamMember
}

type TeamService struct {
	store store.Store
}

func NewTeamService(s store.Store) *TeamService {
	return &TeamService{store: s}
}

// Create validates every reference before the write: the studio must exist
// and every member must point at an existing user. Invalid writes persist
// nothing.
func (s *TeamService) Create(ctx context.Context, requester primitive.ObjectID, in TeamInput) (*entity.Team, error) {
	ve := errs.NewValidationError()

	if in.Name == "" {
		ve.Add("name", "name is required")
	}

	var studio *entity.Studio
	if in.StudioID.IsZero() {
		ve.Add("studioId", "studioId is required")
	} else {
		var err error
		studio, err = s.store.Studios().FindByID(ctx, in.StudioID)
		if err != nil {
			if err == errs.ErrStudioNotFound {
				ve.Add("studioId", "studio does not exist")
			} else {
				return nil, err
			}
		}
	}

	for i, m := range in.Members {
		if m.TeamRole == "" {
			ve.Add("members."+strconv.Itoa(i)+".teamRole", "teamRole is required")
		}
		if _, err := s.store.Users().FindByID(ctx, m.UserID); err != nil {
			if err == errs.ErrUserNotFound {
				ve.Add("members."+strconv.Itoa(i)+".userId", "user does not exist")
			} else {
				return nil, err
			}
		}
	}

	if !ve.Empty() {
		return nil, ve
	}

	if err := requireOwner(requester, studio); err != nil {
		return nil, err
	}

	t := &entity.Team{
		ID:       primitive.NewObjectID(),
		StudioID: in.StudioID,
		Name:     in.Name,
		Members:  in.Members,
	}
	if t.Members == nil {
		t.Members = []entity.TeamMember{}
	}

	if err := s.store.Teams().Insert(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *TeamService) ListByStudio(ctx context.Context, requester, studioID primitive.ObjectID) ([]entity.Team, error) {
	studio, err := s.store.Studios().FindByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(requester, studio); err != nil {
		return nil, err
	}

	return s.store.Teams().FindByStudio(ctx, studioID)
}
