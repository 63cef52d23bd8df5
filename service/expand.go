package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/errs"
)

// ExpandedProject mirrors the project document with its team references
// resolved into documents and member references resolved into the public
// user subset. A reference that no longer resolves expands to null.
type ExpandedProject struct {
	ID       primitive.ObjectID `json:"id"`
	StudioID primitive.ObjectID `json:"studioId"`
	Name     string             `json:"name"`
	Team     []ExpandedTeamRef  `json:"team"`
	ExpireAt time.Time          `json:"expireAt"`
}

type ExpandedTeamRef struct {
	Team *TeamView `json:"teamId"`
}

type TeamView struct {
	Name    string       `json:"name"`
	Members []MemberView `json:"members"`
}

type MemberView struct {
	User     *UserView `json:"userId"`
	TeamRole string    `json:"teamRole"`
}

// UserView is the public field subset. Email and password never leave the
// store through expansion.
type UserView struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
}

func (s *ProjectService) expandProject(ctx context.Context, p *entity.Project) (*ExpandedProject, error) {
	ep := &ExpandedProject{
		ID:       p.ID,
		StudioID: p.StudioID,
		Name:     p.Name,
		Team:     make([]ExpandedTeamRef, 0, len(p.Team)),
		ExpireAt: p.ExpireAt,
	}

	for _, ref := range p.Team {
		tv, err := s.expandTeam(ctx, ref.TeamID)
		if err != nil {
			return nil, err
		}
		ep.Team = append(ep.Team, ExpandedTeamRef{Team: tv})
	}

	return ep, nil
}

func (s *ProjectService) expandTeam(ctx context.Context, id primitive.ObjectID) (*TeamView, error) {
	team, err := s.store.Teams().FindByID(ctx, id)
	if err != nil {
		if err == errs.ErrTeamNotFound {
			return nil, nil
		}
		return nil, err
	}

	tv := &TeamView{
		Name:    team.Name,
		Members: make([]MemberView, 0, len(team.Members)),
	}

	for _, m := range team.Members {
		var uv *UserView
		user, err := s.store.Users().FindByID(ctx, m.UserID)
		if err != nil {
			if err != errs.ErrUserNotFound {
				return nil, err
			}
		} else {
			uv = &UserView{
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Role:      user.Role,
				Avatar:    user.Avatar,
			}
		}
		tv.Members = append(tv.Members, MemberView{User: uv, TeamRole: m.TeamRole})
	}

	return tv, nil
}
