package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/store"
)

var _ = Describe("Project routes", func() {
	var (
		s             store.Store
		r             *gin.Engine
		owner         *entity.User
		ownerToken    string
		strangerToken string
		studio        *entity.Studio
	)

	BeforeEach(func() {
		s = store.Memory()
		r = newRouter(s)
		owner, ownerToken = registerUser(s, "owner@example.com")
		_, strangerToken = registerUser(s, "stranger@example.com")

		studio = &entity.Studio{
			ID:       primitive.NewObjectID(),
			Owner:    owner.ID,
			Name:     "Test studio",
			Projects: []entity.ProjectRef{},
		}
		err := s.Studios().Insert(context.Background(), studio)
		Expect(err).To(BeNil())
	})

	projectPayload := func() gin.H {
		return gin.H{
			"studioId": studio.ID.Hex(),
			"name":     "Site redesign",
			"expireAt": time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		}
	}

	createProject := func() string {
		w := doRequest(r, http.MethodPost, "/projects/add", ownerToken, projectPayload())
		Expect(w.Code).To(Equal(http.StatusOK))
		project := decodeBody(w)["project"].(map[string]interface{})

		return project["id"].(string)
	}

	Describe("GET /projects", func() {
		Specify("sad path - studio absent", func() {
			w := doRequest(r, http.MethodGet, "/projects?studio="+primitive.NewObjectID().Hex(), ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			body := decodeBody(w)
			Expect(body["error"]).To(Equal("studio not found"))
			Expect(body["studio"]).To(Equal(map[string]interface{}{}))
		})
		Specify("sad path - requester is not the owner", func() {
			w := doRequest(r, http.MethodGet, "/projects?studio="+studio.ID.Hex(), strangerToken, nil)
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decodeBody(w)["error"]).To(Equal("access denied"))
		})
		Specify("owned studio with zero projects yields the no-projects body", func() {
			w := doRequest(r, http.MethodGet, "/projects?studio="+studio.ID.Hex(), ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			body := decodeBody(w)
			Expect(body["message"]).To(Equal("no projects"))
			Expect(body["projects"]).To(Equal([]interface{}{}))
		})
		Specify("happy path - created project shows up in the listing", func() {
			id := createProject()

			w := doRequest(r, http.MethodGet, "/projects?studio="+studio.ID.Hex(), ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			projects := decodeBody(w)["projects"].([]interface{})
			Expect(projects).To(HaveLen(1))
			first := projects[0].(map[string]interface{})
			Expect(first["id"]).To(Equal(id))
			Expect(first["studioId"]).To(Equal(studio.ID.Hex()))
		})
	})

	Describe("POST /projects/add", func() {
		Specify("happy path", func() {
			w := doRequest(r, http.MethodPost, "/projects/add", ownerToken, projectPayload())
			Expect(w.Code).To(Equal(http.StatusOK))
			body := decodeBody(w)
			Expect(body["message"]).To(Equal("project created"))
			project := body["project"].(map[string]interface{})
			Expect(project["studioId"]).To(Equal(studio.ID.Hex()))
		})
		Specify("sad path - studio absent", func() {
			payload := projectPayload()
			payload["studioId"] = primitive.NewObjectID().Hex()
			w := doRequest(r, http.MethodPost, "/projects/add", ownerToken, payload)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
		Specify("sad path - not the owner", func() {
			w := doRequest(r, http.MethodPost, "/projects/add", strangerToken, projectPayload())
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decodeBody(w)["error"]).To(Equal("access denied"))
		})
		Specify("sad path - malformed studio id is a validation failure", func() {
			payload := projectPayload()
			payload["studioId"] = "not-an-objectid"
			w := doRequest(r, http.MethodPost, "/projects/add", ownerToken, payload)
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			body := decodeBody(w)
			Expect(body["message"]).To(Equal("validation failed"))
			Expect(body["errors"]).To(HaveKey("studioId"))
		})
		Specify("sad path - missing name reports the field", func() {
			payload := projectPayload()
			payload["name"] = ""
			w := doRequest(r, http.MethodPost, "/projects/add", ownerToken, payload)
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decodeBody(w)["errors"]).To(HaveKey("name"))
		})
	})

	Describe("PATCH /projects/update/:id", func() {
		Specify("sad path - project absent", func() {
			w := doRequest(r, http.MethodPatch, "/projects/update/"+primitive.NewObjectID().Hex(), ownerToken, projectPayload())
			Expect(w.Code).To(Equal(http.StatusNotFound))
			body := decodeBody(w)
			Expect(body["message"]).To(Equal("project not found"))
			Expect(body["project"]).To(Equal(map[string]interface{}{}))
		})
		Specify("happy path - full replace", func() {
			id := createProject()

			payload := projectPayload()
			payload["name"] = "Rebranding"
			w := doRequest(r, http.MethodPatch, "/projects/update/"+id, ownerToken, payload)
			Expect(w.Code).To(Equal(http.StatusOK))
			project := decodeBody(w)["project"].(map[string]interface{})
			Expect(project["name"]).To(Equal("Rebranding"))
		})
		Specify("sad path - not the owner", func() {
			id := createProject()

			w := doRequest(r, http.MethodPatch, "/projects/update/"+id, strangerToken, projectPayload())
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Describe("PATCH /projects/assign", func() {
		var teamID string

		BeforeEach(func() {
			team := &entity.Team{
				ID:       primitive.NewObjectID(),
				StudioID: studio.ID,
				Name:     "Design",
				Members:  []entity.TeamMember{},
			}
			err := s.Teams().Insert(context.Background(), team)
			Expect(err).To(BeNil())
			teamID = team.ID.Hex()
		})

		Specify("sad path - team or project absent", func() {
			id := createProject()

			w := doRequest(r, http.MethodPatch, "/projects/assign?team="+primitive.NewObjectID().Hex()+"&project="+id, ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(w)["error"]).To(Equal("team or project not found"))

			w = doRequest(r, http.MethodPatch, "/projects/assign?team="+teamID+"&project="+primitive.NewObjectID().Hex(), ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(w)["error"]).To(Equal("team or project not found"))
		})
		Specify("happy path - team appended, message names the project", func() {
			id := createProject()

			w := doRequest(r, http.MethodPatch, "/projects/assign?team="+teamID+"&project="+id, ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			body := decodeBody(w)
			Expect(body["message"]).To(Equal("team added to project Site redesign"))
			project := body["project"].(map[string]interface{})
			Expect(project["team"]).To(HaveLen(1))
		})
		Specify("duplicate assignment is not deduplicated", func() {
			id := createProject()

			path := "/projects/assign?team=" + teamID + "&project=" + id
			w := doRequest(r, http.MethodPatch, path, ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			w = doRequest(r, http.MethodPatch, path, ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			project := decodeBody(w)["project"].(map[string]interface{})
			Expect(project["team"]).To(HaveLen(2))
		})
	})

	Describe("DELETE /projects/delete/:id", func() {
		Specify("sad path - project absent", func() {
			w := doRequest(r, http.MethodDelete, "/projects/delete/"+primitive.NewObjectID().Hex(), ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
		Specify("sad path - non-owner is rejected and the project survives", func() {
			id := createProject()

			w := doRequest(r, http.MethodDelete, "/projects/delete/"+id, strangerToken, nil)
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))

			w = doRequest(r, http.MethodGet, "/projects?studio="+studio.ID.Hex(), ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["projects"]).To(HaveLen(1))
		})
		Specify("happy path - deleted project no longer listed", func() {
			id := createProject()

			w := doRequest(r, http.MethodDelete, "/projects/delete/"+id, ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)["message"]).To(Equal("project deleted"))

			w = doRequest(r, http.MethodGet, "/projects?studio="+studio.ID.Hex(), ownerToken, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
