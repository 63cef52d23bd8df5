package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
)

// Store is the process-wide handle to the entity collections. It is passed
// explicitly into services so tests can run against Memory().
type Store interface {
	Users() Users
	Studios() Studios
	Teams() Teams
	Projects() Projects
}

type Users interface {
	Insert(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type Studios interface {
	Insert(ctx context.Context, s *entity.Studio) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Studio, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]entity.Studio, error)

	// PushProject and PullProject mutate the projects reference list as a
	// single atomic document update. Concurrent callers never lose entries.
	PushProject(ctx context.Context, studioID, projectID primitive.ObjectID) error
	PullProject(ctx context.Context, studioID, projectID primitive.ObjectID) error
}

type Teams interface {
	Insert(ctx context.Context, t *entity.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Team, error)
	FindByStudio(ctx context.Context, studioID primitive.ObjectID) ([]entity.Team, error)
}

type Projects interface {
	Insert(ctx context.Context, p *entity.Project) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Project, error)
	FindByStudio(ctx context.Context, studioID primitive.ObjectID) ([]entity.Project, error)
	Replace(ctx context.Context, id primitive.ObjectID, p *entity.Project) error
	PushTeam(ctx context.Context, projectID, teamID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
