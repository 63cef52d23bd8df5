package service_test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/errs"
	"studio-backend/service"
	"studio-backend/store"
)

var _ = Describe("TeamService", func() {
	var (
		s        store.Store
		svc      *service.TeamService
		owner    *entity.User
		stranger *entity.User
		studio   *entity.Studio
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = store.Memory()
		svc = service.NewTeamService(s)
		owner = insertUser(s, "Anna", "Petrova")
		stranger = insertUser(s, "Boris", "Ivanov")
		studio = insertStudio(s, owner.ID)
	})

	Describe("Create", func() {
		Specify("happy path", func() {
			member := insertUser(s, "Vera", "Sidorova")
			team, err := svc.Create(ctx, owner.ID, service.TeamInput{
				StudioID: studio.ID,
				Name:     "Design",
				Members:  []entity.TeamMember{{UserID: member.ID, TeamRole: "designer"}},
			})
			Expect(err).To(BeNil())
			Expect(team.ID.IsZero()).To(BeFalse())

			got, err := s.Teams().FindByID(ctx, team.ID)
			Expect(err).To(BeNil())
			Expect(got.Members).To(HaveLen(1))
		})
		Specify("sad path - studio reference does not resolve", func() {
			_, err := svc.Create(ctx, owner.ID, service.TeamInput{
				StudioID: primitive.NewObjectID(),
				Name:     "Design",
			})
			ve, ok := errs.AsValidation(err)
			Expect(ok).To(BeTrue())
			Expect(ve.Fields).To(HaveKeyWithValue("studioId", "studio does not exist"))
		})
		Specify("sad path - member reference does not resolve, nothing persisted", func() {
			_, err := svc.Create(ctx, owner.ID, service.TeamInput{
				StudioID: studio.ID,
				Name:     "Design",
				Members:  []entity.TeamMember{{UserID: primitive.NewObjectID(), TeamRole: "designer"}},
			})
			ve, ok := errs.AsValidation(err)
			Expect(ok).To(BeTrue())
			Expect(ve.Fields).To(HaveKey("members.0.userId"))

			teams, err := s.Teams().FindByStudio(ctx, studio.ID)
			Expect(err).To(BeNil())
			Expect(teams).To(BeEmpty())
		})
		Specify("sad path - missing name and member role are both reported", func() {
			member := insertUser(s, "Vera", "Sidorova")
			_, err := svc.Create(ctx, owner.ID, service.TeamInput{
				StudioID: studio.ID,
				Members:  []entity.TeamMember{{UserID: member.ID}},
			})
			ve, ok := errs.AsValidation(err)
			Expect(ok).To(BeTrue())
			Expect(ve.Fields).To(HaveKey("name"))
			Expect(ve.Fields).To(HaveKey("members.0.teamRole"))
		})
		Specify("sad path - requester is not the owner", func() {
			_, err := svc.Create(ctx, stranger.ID, service.TeamInput{
				StudioID: studio.ID,
				Name:     "Design",
			})
			Expect(err).To(MatchError(errs.ErrAccessDenied))
		})
	})

	Describe("ListByStudio", func() {
		Specify("sad path - studio absent", func() {
			_, err := svc.ListByStudio(ctx, owner.ID, primitive.NewObjectID())
			Expect(err).To(MatchError(errs.ErrStudioNotFound))
		})
		Specify("sad path - requester is not the owner", func() {
			_, err := svc.ListByStudio(ctx, stranger.ID, studio.ID)
			Expect(err).To(MatchError(errs.ErrAccessDenied))
		})
		Specify("happy path", func() {
			insertTeam(s, studio.ID)
			teams, err := svc.ListByStudio(ctx, owner.ID, studio.ID)
			Expect(err).To(BeNil())
			Expect(teams).To(HaveLen(1))
		})
	})
})
