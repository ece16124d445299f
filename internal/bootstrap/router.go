package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	adminhttp "github.com/portfolio-7b282/portfolio-backend/internal/admin/http"
	adminservice "github.com/portfolio-7b282/portfolio-backend/internal/admin/service"
	httpapi "github.com/portfolio-7b282/portfolio-backend/internal/api/http"
	apimw "github.com/portfolio-7b282/portfolio-backend/internal/api/middleware"
	authhttp "github.com/portfolio-7b282/portfolio-backend/internal/auth/http"
	authmw "github.com/portfolio-7b282/portfolio-backend/internal/auth/middleware"
	authservice "github.com/portfolio-7b282/portfolio-backend/internal/auth/service"
	contactshttp "github.com/portfolio-7b282/portfolio-backend/internal/contacts/http"
	contactsservice "github.com/portfolio-7b282/portfolio-backend/internal/contacts/service"
	projectshttp "github.com/portfolio-7b282/portfolio-backend/internal/projects/http"
	projectsrepo "github.com/portfolio-7b282/portfolio-backend/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string

	Verifier  authmw.TokenVerifier
	Sessions  *authservice.SessionService
	Projects  *projectsrepo.Repo
	Contacts  *contactsservice.Service
	Dashboard *adminservice.Dashboard
	Cache     *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimw.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Cache)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	authHandler := authhttp.NewHandler(dep.Sessions)
	authGroup := api.Group("/auth")
	authHandler.Register(authGroup)

	projectsHandler := projectshttp.NewHandler(dep.Projects)
	projectsHandler.Register(api.Group("/projects"))

	// 5 submissions per minute per client is plenty for a contact form.
	contactGroup := api.Group("/contact")
	contactGroup.Use(apimw.RateLimitMiddleware(rate.Every(12*time.Second), 5))

	contactsHandler := contactshttp.NewHandler(dep.Contacts)
	contactsHandler.Register(contactGroup)

	// Everything below requires a verified Firebase session.
	protected := authGroup.Group("")
	protected.Use(authmw.FirebaseAuthMiddleware(dep.Verifier))
	authHandler.RegisterProtected(protected)

	admin := api.Group("/admin")
	admin.Use(authmw.FirebaseAuthMiddleware(dep.Verifier))

	adminHandler := adminhttp.NewHandler(dep.Dashboard)
	adminHandler.Register(admin)

	return r
}
