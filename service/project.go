package service

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"studio-backend/entity"
	"studio-backend/errs"
	"studio-backend/log"
	"studio-backend/store"
)

type ProjectInput struct {
	StudioID primitive.ObjectID
	Name     string
	Team     []entity.TeamRef
	ExpireAt time.Time
}

type ProjectService struct {
	store  store.Store
	events ProjectEvents
}

func NewProjectService(s store.Store, ev ProjectEvents) *ProjectService {
	if ev == nil {
		ev = NopEvents{}
	}

	return &ProjectService{store: s, events: ev}
}

// List returns every project of the studio with team and member references
// expanded. An owned studio with no projects yields an empty slice, not an
// error. Existence is checked before ownership.
func (s *ProjectService) List(ctx context.Context, requester, studioID primitive.ObjectID) ([]ExpandedProject, error) {
	studio, err := s.store.Studios().FindByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(requester, studio); err != nil {
		return nil, err
	}

	projects, err := s.store.Projects().FindByStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}

	expanded := make([]ExpandedProject, 0, len(projects))
	for i := range projects {
		ep, err := s.expandProject(ctx, &projects[i])
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, *ep)
	}

	return expanded, nil
}

// Create persists the project and then appends its reference to the studio
// with a single atomic update. If the append fails the project stays behind
// unreferenced; there is no cross-document transaction to roll it back.
func (s *ProjectService) Create(ctx context.Context, requester primitive.ObjectID, in ProjectInput) (*entity.Project, error) {
	studio, err := s.store.Studios().FindByID(ctx, in.StudioID)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(requester, studio); err != nil {
		return nil, err
	}

	if err := s.validateProject(ctx, &in); err != nil {
		return nil, err
	}

	p := &entity.Project{
		ID:       primitive.NewObjectID(),
		StudioID: in.StudioID,
		Name:     in.Name,
		Team:     in.Team,
		ExpireAt: in.ExpireAt,
	}
	if p.Team == nil {
		p.Team = []entity.TeamRef{}
	}

	if err := s.store.Projects().Insert(ctx, p); err != nil {
		return nil, err
	}

	if err := s.store.Studios().PushProject(ctx, in.StudioID, p.ID); err != nil {
		log.Logger.Error("project left unreferenced by studio",
			zap.String("project", p.ID.Hex()),
			zap.String("studio", in.StudioID.Hex()),
			zap.Error(err))
		return nil, err
	}

	s.events.ProjectCreated(p)

	return p, nil
}

// Update replaces every project field wholesale. The requester must own the
// studio the project currently belongs to.
func (s *ProjectService) Update(ctx context.Context, requester, id primitive.ObjectID, in ProjectInput) (*entity.Project, error) {
	existing, err := s.store.Projects().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	studio, err := s.store.Studios().FindByID(ctx, existing.StudioID)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(requester, studio); err != nil {
		return nil, err
	}

	if err := s.validateProject(ctx, &in); err != nil {
		return nil, err
	}

	p := &entity.Project{
		ID:       id,
		StudioID: in.StudioID,
		Name:     in.Name,
		Team:     in.Team,
		ExpireAt: in.ExpireAt,
	}
	if p.Team == nil {
		p.Team = []entity.TeamRef{}
	}

	if err := s.store.Projects().Replace(ctx, id, p); err != nil {
		return nil, err
	}

	s.events.ProjectUpdated(p)

	return p, nil
}

// Assign appends the team reference to the project. Duplicate assignments are
// not deduplicated; assigning the same team twice produces two entries.
func (s *ProjectService) Assign(ctx context.Context, requester, teamID, projectID primitive.ObjectID) (*entity.Project, error) {
	team, err := s.store.Teams().FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	project, err := s.store.Projects().FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	studio, err := s.store.Studios().FindByID(ctx, project.StudioID)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(requester, studio); err != nil {
		return nil, err
	}

	if err := s.store.Projects().PushTeam(ctx, projectID, team.ID); err != nil {
		return nil, err
	}

	project.Team = append(project.Team, entity.TeamRef{TeamID: team.ID})
	s.events.ProjectAssigned(project)

	return project, nil
}

// Delete removes the project and pulls its reference out of the owning
// studio. Existence is checked before ownership.
func (s *ProjectService) Delete(ctx context.Context, requester, id primitive.ObjectID) (*entity.Project, error) {
	project, err := s.store.Projects().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	studio, err := s.store.Studios().FindByID(ctx, project.StudioID)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(requester, studio); err != nil {
		return nil, err
	}

	if err := s.store.Projects().Delete(ctx, id); err != nil {
		return nil, err
	}

	if err := s.store.Studios().PullProject(ctx, studio.ID, id); err != nil {
		log.Logger.Error("dangling project reference left on studio",
			zap.String("project", id.Hex()),
			zap.String("studio", studio.ID.Hex()),
			zap.Error(err))
	}

	s.events.ProjectDeleted(project)

	return project, nil
}

// validateProject rejects missing required fields and team references that
// do not resolve. Reference checks are lookups against the store, mirroring
// write-time validation in the schema layer.
func (s *ProjectService) validateProject(ctx context.Context, in *ProjectInput) error {
	ve := errs.NewValidationError()

	if in.Name == "" {
		ve.Add("name", "name is required")
	}
	if in.StudioID.IsZero() {
		ve.Add("studioId", "studioId is required")
	} else if _, err := s.store.Studios().FindByID(ctx, in.StudioID); err != nil {
		if err == errs.ErrStudioNotFound {
			ve.Add("studioId", "studio does not exist")
		} else {
			return err
		}
	}

	for i, ref := range in.Team {
		if _, err := s.store.Teams().FindByID(ctx, ref.TeamID); err != nil {
			if err == errs.ErrTeamNotFound {
				ve.Add("team."+strconv.Itoa(i)+".teamId", "team does not exist")
			} else {
				return err
			}
		}
	}

	if !ve.Empty() {
		return ve
	}

	return nil
}
