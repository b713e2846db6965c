package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fashioncollab/fashioncollab/internal/handlers"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Projects    *handlers.ProjectHandler
	Memberships *handlers.MembershipHandler
}

func New(h Handlers, authRequired gin.HandlerFunc, clientURL string) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}

	if clientURL != "" {
		origins = append(origins, clientURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/me", authRequired, h.Auth.Me)
		}

		projects := api.Group("/projects", authRequired)
		{
			projects.POST("", h.Projects.Create)
			projects.GET("", h.Projects.List)
			projects.PATCH("/:project_id", h.Projects.Update)
			projects.DELETE("/:project_id", h.Projects.Delete)

			// Membership endpoints
			projects.POST("/:project_id/invites", h.Memberships.Invite)
			projects.POST("/:project_id/invites/accept", h.Memberships.Accept)
		}
	}

	return r
}
