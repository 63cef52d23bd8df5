package handler

import (
	"net/http"
	"net/mail"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"studio-backend/entity"
	"studio-backend/errs"
	"studio-backend/jwt"
	"studio-backend/log"
	"studio-backend/store"
)

type AuthHandler struct {
	users store.Users
	key   []byte
}

func NewAuthHandler(s store.Store, key []byte) *AuthHandler {
	return &AuthHandler{users: s.Users(), key: key}
}

type registerBody struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
}

// POST /users
func (h *AuthHandler) Register(c *gin.Context) {
	var body registerBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if body.FirstName == "" || body.LastName == "" {
		respondError(c, errs.ErrNameRequired)
		return
	}
	if _, err := mail.ParseAddress(body.Email); err != nil {
		respondError(c, errs.ErrEmailAddressFormat)
		return
	}
	if body.Password == "" {
		respondError(c, errs.ErrPasswordRequired)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		log.Logger.Error("failed to generate bcrypt hash", zap.Error(err))
		respondError(c, errs.ErrCryptographic)
		return
	}

	role := body.Role
	if role == "" {
		role = "user"
	}

	u := &entity.User{
		ID:        primitive.NewObjectID(),
		Email:     body.Email,
		Password:  string(hash),
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Role:      role,
		Avatar:    body.Avatar,
	}

	if err := h.users.Insert(c.Request.Context(), u); err != nil {
		respondError(c, err)
		return
	}

	h.respondTokens(c, "user registered", u)
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /users/sessions
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if body.Email == "" {
		respondError(c, errs.ErrEmailRequired)
		return
	}
	if body.Password == "" {
		respondError(c, errs.ErrPasswordRequired)
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), body.Email)
	if err != nil {
		if err == errs.ErrUserNotFound {
			respondError(c, errs.ErrInvalidEmailOrPassword)
			return
		}
		respondError(c, err)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(body.Password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			log.Logger.Debug("invalid password", zap.Error(err))
			respondError(c, errs.ErrInvalidEmailOrPassword)
			return
		}
		respondError(c, errs.ErrCryptographic)
		return
	}

	h.respondTokens(c, "login successful", u)
}

type refreshBody struct {
	Token string `json:"token"`
}

// POST /users/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var body refreshBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	claims, err := jwt.ValidateRefreshToken(body.Token, h.key)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
		return
	}

	u, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if err == errs.ErrUserNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		respondError(c, err)
		return
	}

	accessToken, err := jwt.NewAccessToken(u, h.key)
	if err != nil {
		respondError(c, errs.ErrJWT)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "token refreshed", "accessToken": accessToken})
}

func (h *AuthHandler) respondTokens(c *gin.Context, message string, u *entity.User) {
	accessToken, err := jwt.NewAccessToken(u, h.key)
	if err != nil {
		respondError(c, errs.ErrJWT)
		return
	}

	refreshToken, err := jwt.NewRefreshToken(u, h.key)
	if err != nil {
		respondError(c, errs.ErrJWT)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      message,
		"user":         u,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
