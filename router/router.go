package router

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"studio-backend/handler"
	"studio-backend/middleware"
	"studio-backend/service"
	"studio-backend/store"
)

type Config struct {
	Store       store.Store
	Events      service.ProjectEvents
	JWTKey      []byte
	CORSOrigins string
}

// New wires stores, services and handlers into the gin engine.
func New(cfg Config) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:5173"}
	if cfg.CORSOrigins != "" {
		origins = strings.Split(cfg.CORSOrigins, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handler.NewAuthHandler(cfg.Store, cfg.JWTKey)
	studioHandler := handler.NewStudioHandler(service.NewStudioService(cfg.Store))
	teamHandler := handler.NewTeamHandler(service.NewTeamService(cfg.Store))
	projectHandler := handler.NewProjectHandler(service.NewProjectService(cfg.Store, cfg.Events))

	auth := middleware.Auth(cfg.JWTKey)

	users := r.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/sessions", authHandler.Login)
		users.POST("/refresh", authHandler.Refresh)
	}

	studio := r.Group("/studio", auth)
	{
		studio.POST("", studioHandler.Create)
		studio.GET("", studioHandler.List)
		studio.GET("/:id", studioHandler.Get)
	}

	teams := r.Group("/teams", auth)
	{
		teams.POST("/add", teamHandler.Create)
		teams.GET("", teamHandler.List)
	}

	projects := r.Group("/projects", auth)
	{
		projects.GET("", projectHandler.List)
		projects.POST("/add", projectHandler.Create)
		projects.PATCH("/update/:id", projectHandler.Update)
		projects.PATCH("/assign", projectHandler.Assign)
		projects.DELETE("/delete/:id", projectHandler.Delete)
	}

	return r
}
