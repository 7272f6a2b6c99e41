package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hireloop/recruitd/config"
	"github.com/hireloop/recruitd/internal/api/handlers"
	"github.com/hireloop/recruitd/internal/api/middleware"
	"github.com/hireloop/recruitd/internal/api/routes"
	"github.com/hireloop/recruitd/internal/auth"
	"github.com/hireloop/recruitd/internal/logger"
	pgrepo "github.com/hireloop/recruitd/internal/repositories/postgres"
	"github.com/hireloop/recruitd/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	db, err := config.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	tokens := auth.NewTokenManager(cfg)

	userRepo := pgrepo.NewUserRepo(db)
	jobRepo := pgrepo.NewJobRepo(db)

	userSvc := services.NewUserService(userRepo, tokens, cfg.BcryptCost)
	adminSvc := services.NewAdminService(userRepo, jobRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Tokens: tokens,
		User:   handlers.NewUserHandler(userSvc),
		Admin:  handlers.NewAdminHandler(adminSvc),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
