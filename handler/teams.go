package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/errs"
	"studio-backend/middleware"
	"studio-backend/service"
)

type TeamHandler struct {
	svc *service.TeamService
}

func NewTeamHandler(svc *service.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

type teamMemberBody struct {
	UserID   string `json:"userId"`
	TeamRole string `json:"teamRole"`
}

type teamBody struct {
	StudioID string           `json:"studioId"`
	Name     string           `json:"name"`
	Members  []teamMemberBody `json:"members"`
}

// POST /teams/add
func (h *TeamHandler) Create(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	var body teamBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ve := errs.NewValidationError()
	in := service.TeamInput{Name: body.Name}

	if body.StudioID != "" {
		id, err := primitive.ObjectIDFromHex(body.StudioID)
		if err != nil {
			ve.Add("studioId", "invalid ID")
		} else {
			in.StudioID = id
		}
	}

	for _, m := range body.Members {
		id, err := primitive.ObjectIDFromHex(m.UserID)
		if err != nil {
			ve.Add("members", "invalid ID")
			continue
		}
		in.Members = append(in.Members, entity.TeamMember{UserID: id, TeamRole: m.TeamRole})
	}

	if !ve.Empty() {
		respondError(c, ve)
		return
	}

	team, err := h.svc.Create(c.Request.Context(), requester, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team created", "team": team})
}

// GET /teams?studio=ID
func (h *TeamHandler) List(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	studioID, err := primitive.ObjectIDFromHex(c.Query("studio"))
	if err != nil {
		invalidID(c, "studio")
		return
	}

	teams, err := h.svc.ListByStudio(c.Request.Context(), requester, studioID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "teams loaded", "teams": teams})
}
