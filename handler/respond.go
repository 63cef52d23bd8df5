package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"studio-backend/errs"
	"studio-backend/log"
)

// respondError maps service errors onto the wire contract: 404 for missing
// entities, 422 for denied or invalid writes, 500 otherwise. Every failure
// body carries a message plus an empty echo of the requested entity.
func respondError(c *gin.Context, err error) {
	if ve, ok := errs.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "validation failed", "errors": ve.Fields})
		return
	}

	switch err {
	case errs.ErrStudioNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "studio not found", "studio": gin.H{}})
	case errs.ErrProjectNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "project not found", "project": gin.H{}})
	case errs.ErrTeamNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found", "team": gin.H{}})
	case errs.ErrAccessDenied:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "access denied", "studio": gin.H{}})
	case errs.ErrAlreadyExists:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "user already registered", "user": gin.H{}})
	case errs.ErrInvalidEmailOrPassword:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid email or password", "user": gin.H{}})
	case errs.ErrNameRequired, errs.ErrEmailRequired, errs.ErrPasswordRequired, errs.ErrEmailAddressFormat:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "user": gin.H{}})
	default:
		log.Logger.Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func invalidID(c *gin.Context, field string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "validation failed",
		"errors":  gin.H{field: "invalid ID"},
	})
}
