package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/recruitd/internal/api/handlers"
	"github.com/hireloop/recruitd/internal/api/middleware"
	"github.com/hireloop/recruitd/internal/auth"
)

type Deps struct {
	Tokens *auth.TokenManager
	User   *handlers.UserHandler
	Admin  *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	user := r.Group("/api/User")
	user.POST("/signup", d.User.Signup)
	user.POST("/login", d.User.Login)
	user.GET("/profile", middleware.JWTAuth(d.Tokens), d.User.Profile)

	admin := r.Group("/api/Admin")
	admin.Use(middleware.JWTAuth(d.Tokens), middleware.RequireAdmin())

	admin.POST("/job", d.Admin.CreateJob)
	admin.GET("/job/:job_id", d.Admin.GetJob)
	admin.GET("/resumes", d.Admin.ListResumes)
	admin.GET("/user/:user_id", d.Admin.GetUser)
}
