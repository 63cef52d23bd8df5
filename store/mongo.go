package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"studio-backend/entity"
	"studio-backend/errs"
	"studio-backend/log"
)

const databaseName = "studio"

type mongoStore struct {
	users    *mongoUsers
	studios  *mongoStudios
	teams    *mongoTeams
	projects *mongoProjects
}

// Mongo wraps a connected client. A unique index on users.email backs the
// duplicate-registration check.
func Mongo(client *mongo.Client) Store {
	db := client.Database(databaseName)

	_, err := db.Collection("users").Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		log.Logger.Fatal("unable to create index", zap.Error(err))
	}

	return &mongoStore{
		users:    &mongoUsers{c: db.Collection("users")},
		studios:  &mongoStudios{c: db.Collection("studios")},
		teams:    &mongoTeams{c: db.Collection("teams")},
		projects: &mongoProjects{c: db.Collection("projects")},
	}
}

func (s *mongoStore) Users() Users       { return s.users }
func (s *mongoStore) Studios() Studios   { return s.studios }
func (s *mongoStore) Teams() Teams       { return s.teams }
func (s *mongoStore) Projects() Projects { return s.projects }

type mongoUsers struct {
	c *mongo.Collection
}

func (s *mongoUsers) Insert(ctx context.Context, u *entity.User) error {
	_, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrAlreadyExists
		}

		log.Logger.Error("failed inserting user", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}

func (s *mongoUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	u := &entity.User{}
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrUserNotFound
		}

		log.Logger.Error("database error", zap.Error(err), zap.String("id", id.Hex()))
		return nil, errs.ErrDatabase
	}

	return u, nil
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrUserNotFound
		}

		log.Logger.Error("database error", zap.Error(err), zap.String("email", email))
		return nil, errs.ErrDatabase
	}

	return u, nil
}

type mongoStudios struct {
	c *mongo.Collection
}

func (s *mongoStudios) Insert(ctx context.Context, st *entity.Studio) error {
	if st.ID.IsZero() {
		st.ID = primitive.NewObjectID()
	}
	if st.Projects == nil {
		st.Projects = []entity.ProjectRef{}
	}

	_, err := s.c.InsertOne(ctx, st)
	if err != nil {
		log.Logger.Error("failed inserting studio", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}

func (s *mongoStudios) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Studio, error) {
	st := &entity.Studio{}
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(st)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrStudioNotFound
		}

		log.Logger.Error("database error", zap.Error(err), zap.String("id", id.Hex()))
		return nil, errs.ErrDatabase
	}

	return st, nil
}

func (s *mongoStudios) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]entity.Studio, error) {
	cursor, err := s.c.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}
	defer cursor.Close(context.Background())

	studios := []entity.Studio{}
	if err := cursor.All(ctx, &studios); err != nil {
		log.Logger.Error("cursor error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return studios, nil
}

func (s *mongoStudios) PushProject(ctx context.Context, studioID, projectID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": studioID},
		bson.M{"$push": bson.M{"projects": entity.ProjectRef{ProjectID: projectID}}},
	)
	if err != nil {
		log.Logger.Error("database error", zap.Error(err), zap.String("studio", studioID.Hex()))
		return errs.ErrDatabase
	}
	if res.MatchedCount == 0 {
		return errs.ErrStudioNotFound
	}

	return nil
}

func (s *mongoStudios) PullProject(ctx context.Context, studioID, projectID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": studioID},
		bson.M{"$pull": bson.M{"projects": bson.M{"projectId": projectID}}},
	)
	if err != nil {
		log.Logger.Error("database error", zap.Error(err), zap.String("studio", studioID.Hex()))
		return errs.ErrDatabase
	}
	if res.MatchedCount == 0 {
		return errs.ErrStudioNotFound
	}

	return nil
}

type mongoTeams struct {
	c *mongo.Collection
}

func (s *mongoTeams) Insert(ctx context.Context, t *entity.Team) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Members == nil {
		t.Members = []entity.TeamMember{}
	}

	_, err := s.c.InsertOne(ctx, t)
	if err != nil {
		log.Logger.Error("failed inserting team", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}

func (s *mongoTeams) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Team, error) {
	t := &entity.Team{}
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrTeamNotFound
		}

		log.Logger.Error("database error", zap.Error(err), zap.String("id", id.Hex()))
		return nil, errs.ErrDatabase
	}

	return t, nil
}

func (s *mongoTeams) FindByStudio(ctx context.Context, studioID primitive.ObjectID) ([]entity.Team, error) {
	cursor, err := s.c.Find(ctx, bson.M{"studioId": studioID})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}
	defer cursor.Close(context.Background())

	teams := []entity.Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		log.Logger.Error("cursor error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return teams, nil
}

type mongoProjects struct {
	c *mongo.Collection
}

func (s *mongoProjects) Insert(ctx context.Context, p *entity.Project) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Team == nil {
		p.Team = []entity.TeamRef{}
	}

	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		log.Logger.Error("failed inserting project", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}

func (s *mongoProjects) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Project, error) {
	p := &entity.Project{}
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrProjectNotFound
		}

		log.Logger.Error("database error", zap.Error(err), zap.String("id", id.Hex()))
		return nil, errs.ErrDatabase
	}

	return p, nil
}

func (s *mongoProjects) FindByStudio(ctx context.Context, studioID primitive.ObjectID) ([]entity.Project, error) {
	cursor, err := s.c.Find(ctx, bson.M{"studioId": studioID})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}
	defer cursor.Close(context.Background())

	projects := []entity.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		log.Logger.Error("cursor error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return projects, nil
}

func (s *mongoProjects) Replace(ctx context.Context, id primitive.ObjectID, p *entity.Project) error {
	p.ID = id
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, p)
	if err != nil {
		log.Logger.Error("database error", zap.Error(err), zap.String("id", id.Hex()))
		return errs.ErrDatabase
	}
	if res.MatchedCount == 0 {
		return errs.ErrProjectNotFound
	}

	return nil
}

func (s *mongoProjects) PushTeam(ctx context.Context, projectID, teamID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": projectID},
		bson.M{"$push": bson.M{"team": entity.TeamRef{TeamID: teamID}}},
	)
	if err != nil {
		log.Logger.Error("database error", zap.Error(err), zap.String("project", projectID.Hex()))
		return errs.ErrDatabase
	}
	if res.MatchedCount == 0 {
		return errs.ErrProjectNotFound
	}

	return nil
}

func (s *mongoProjects) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err), zap.String("id", id.Hex()))
		return errs.ErrDatabase
	}
	if res.DeletedCount == 0 {
		return errs.ErrProjectNotFound
	}

	return nil
}
