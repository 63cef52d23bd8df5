package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/errs"
)

type memoryStore struct {
	users    *memoryUsers
	studios  *memoryStudios
	teams    *memoryTeams
	projects *memoryProjects
}

// Memory returns an empty in-process store with the same contract as Mongo.
// Used by the test suites.
func Memory() Store {
	return &memoryStore{
		users:    &memoryUsers{byID: map[primitive.ObjectID]entity.User{}},
		studios:  &memoryStudios{byID: map[primitive.ObjectID]entity.Studio{}},
		teams:    &memoryTeams{byID: map[primitive.ObjectID]entity.Team{}},
		projects: &memoryProjects{byID: map[primitive.ObjectID]entity.Project{}},
	}
}

func (s *memoryStore) Users() Users       { return s.users }
func (s *memoryStore) Studios() Studios   { return s.studios }
func (s *memoryStore) Teams() Teams       { return s.teams }
func (s *memoryStore) Projects() Projects { return s.projects }

type memoryUsers struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]entity.User
}

func (s *memoryUsers) Insert(ctx context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.byID {
		if v.Email == u.Email {
			return errs.ErrAlreadyExists
		}
	}
	s.byID[u.ID] = *u

	return nil
}

func (s *memoryUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}

	return &u, nil
}

func (s *memoryUsers) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.byID {
		if v.Email == email {
			u := v
			return &u, nil
		}
	}

	return nil, errs.ErrUserNotFound
}

type memoryStudios struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]entity.Studio
}

func copyStudio(st entity.Studio) entity.Studio {
	st.Projects = append([]entity.ProjectRef{}, st.Projects...)
	return st
}

func (s *memoryStudios) Insert(ctx context.Context, st *entity.Studio) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.ID.IsZero() {
		st.ID = primitive.NewObjectID()
	}
	if st.Projects == nil {
		st.Projects = []entity.ProjectRef{}
	}
	s.byID[st.ID] = copyStudio(*st)

	return nil
}

func (s *memoryStudios) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Studio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byID[id]
	if !ok {
		return nil, errs.ErrStudioNotFound
	}
	out := copyStudio(st)

	return &out, nil
}

func (s *memoryStudios) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]entity.Studio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	studios := []entity.Studio{}
	for _, st := range s.byID {
		if st.Owner == owner {
			studios = append(studios, copyStudio(st))
		}
	}

	return studios, nil
}

func (s *memoryStudios) PushProject(ctx context.Context, studioID, projectID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byID[studioID]
	if !ok {
		return errs.ErrStudioNotFound
	}
	st.Projects = append(st.Projects, entity.ProjectRef{ProjectID: projectID})
	s.byID[studioID] = st

	return nil
}

func (s *memoryStudios) PullProject(ctx context.Context, studioID, projectID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byID[studioID]
	if !ok {
		return errs.ErrStudioNotFound
	}

	kept := st.Projects[:0]
	for _, ref := range st.Projects {
		if ref.ProjectID != projectID {
			kept = append(kept, ref)
		}
	}
	st.Projects = kept
	s.byID[studioID] = st

	return nil
}

type memoryTeams struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]entity.Team
}

func copyTeam(t entity.Team) entity.Team {
	t.Members = append([]entity.TeamMember{}, t.Members...)
	return t
}

func (s *memoryTeams) Insert(ctx context.Context, t *entity.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Members == nil {
		t.Members = []entity.TeamMember{}
	}
	s.byID[t.ID] = copyTeam(*t)

	return nil
}

func (s *memoryTeams) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, errs.ErrTeamNotFound
	}
	out := copyTeam(t)

	return &out, nil
}

func (s *memoryTeams) FindByStudio(ctx context.Context, studioID primitive.ObjectID) ([]entity.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teams := []entity.Team{}
	for _, t := range s.byID {
		if t.StudioID == studioID {
			teams = append(teams, copyTeam(t))
		}
	}

	return teams, nil
}

type memoryProjects struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]entity.Project
}

func copyProject(p entity.Project) entity.Project {
	p.Team = append([]entity.TeamRef{}, p.Team...)
	return p
}

func (s *memoryProjects) Insert(ctx context.Context, p *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Team == nil {
		p.Team = []entity.TeamRef{}
	}
	s.byID[p.ID] = copyProject(*p)

	return nil
}

func (s *memoryProjects) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, errs.ErrProjectNotFound
	}
	out := copyProject(p)

	return &out, nil
}

func (s *memoryProjects) FindByStudio(ctx context.Context, studioID primitive.ObjectID) ([]entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := []entity.Project{}
	for _, p := range s.byID {
		if p.StudioID == studioID {
			projects = append(projects, copyProject(p))
		}
	}

	return projects, nil
}

func (s *memoryProjects) Replace(ctx context.Context, id primitive.ObjectID, p *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return errs.ErrProjectNotFound
	}
	p.ID = id
	if p.Team == nil {
		p.Team = []entity.TeamRef{}
	}
	s.byID[id] = copyProject(*p)

	return nil
}

func (s *memoryProjects) PushTeam(ctx context.Context, projectID, teamID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[projectID]
	if !ok {
		return errs.ErrProjectNotFound
	}
	p.Team = append(p.Team, entity.TeamRef{TeamID: teamID})
	s.byID[projectID] = p

	return nil
}

func (s *memoryProjects) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return errs.ErrProjectNotFound
	}
	delete(s.byID, id)

	return nil
}
