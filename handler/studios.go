package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/middleware"
	"studio-backend/service"
)

type StudioHandler struct {
	svc *service.StudioService
}

func NewStudioHandler(svc *service.StudioService) *StudioHandler {
	return &StudioHandler{svc: svc}
}

type studioBody struct {
	Name string `json:"name"`
}

// POST /studio
func (h *StudioHandler) Create(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	var body studioBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	studio, err := h.svc.Create(c.Request.Context(), requester, body.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "studio created", "studio": studio})
}

// GET /studio
func (h *StudioHandler) List(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	studios, err := h.svc.ListByOwner(c.Request.Context(), requester)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "studios loaded", "studios": studios})
}

// GET /studio/:id
func (h *StudioHandler) Get(c *gin.Context) {
	requester, _ := middleware.RequesterID(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		invalidID(c, "id")
		return
	}

	studio, err := h.svc.Get(c.Request.Context(), requester, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "studio loaded", "studio": studio})
}
