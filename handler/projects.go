package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/errs"
	"studio-backend/middleware"
	"studio-backend/service"
)

type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

type teamRefBody struct {
	TeamID string `json:"teamId"`
}

type projectBody struct {
	StudioID string        `json:"studioId"`
	Name     string        `json:"name"`
	Team     []teamRefBody `json:"team"`
	ExpireAt time.Time     `json:"expireAt"`
}

// toInput converts the wire body into a service input. Malformed ObjectID
// hex becomes a field-level validation error rather than a parse failure,
// matching the 422 the original cast errors produced.
func (b *projectBody) toInput() (service.ProjectInput, *errs.ValidationError) {
	ve := errs.NewValidationError()

	in := service.ProjectInput{
		Name:     b.Name,
		ExpireAt: b.ExpireAt,
	}

	if b.StudioID != "" {
		id, err := primitive.ObjectIDFromHex(b.StudioID)
		if err != nil {
			ve.Add("studioId", "invalid ID")
		} else {
			in.StudioID = id
		}
	}

	for _, ref := range b.Team {
		id, err := primitive.ObjectIDFromHex(ref.TeamID)
		if err != nil {
			ve.Add("team", "invalid ID")
			continue
		}
		in.Team = append(in.Team, entity.TeamRef{TeamID: id})
	}

	if !ve.Empty() {
		return in, ve
	}

	return in, nil
}

// GET /projects?studio=ID
func (h *ProjectHandler) List(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	studioID, err := primitive.ObjectIDFromHex(c.Query("studio"))
	if err != nil {
		invalidID(c, "studio")
		return
	}

	projects, err := h.svc.List(c.Request.Context(), requester, studioID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(projects) < 1 {
		c.JSON(http.StatusNotFound, gin.H{"message": "no projects", "projects": []service.ExpandedProject{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "projects loaded", "projects": projects})
}

// POST /projects/add
func (h *ProjectHandler) Create(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	var body projectBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	in, ve := body.toInput()
	if ve != nil {
		respondError(c, ve)
		return
	}

	project, err := h.svc.Create(c.Request.Context(), requester, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project created", "project": project})
}

// PATCH /projects/update/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		invalidID(c, "id")
		return
	}

	var body projectBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	in, ve := body.toInput()
	if ve != nil {
		respondError(c, ve)
		return
	}

	project, err := h.svc.Update(c.Request.Context(), requester, id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project updated", "project": project})
}

// PATCH /projects/assign?team=T&project=P
func (h *ProjectHandler) Assign(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	teamID, err := primitive.ObjectIDFromHex(c.Query("team"))
	if err != nil {
		invalidID(c, "team")
		return
	}

	projectID, err := primitive.ObjectIDFromHex(c.Query("project"))
	if err != nil {
		invalidID(c, "project")
		return
	}

	project, err := h.svc.Assign(c.Request.Context(), requester, teamID, projectID)
	if err != nil {
		if err == errs.ErrTeamNotFound || err == errs.ErrProjectNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "team or project not found", "project": gin.H{}})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team added to project " + project.Name, "project": project})
}

// DELETE /projects/delete/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		invalidID(c, "id")
		return
	}

	project, err := h.svc.Delete(c.Request.Context(), requester, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted", "project": project})
}
