package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/theinterviewer/backend/internal/handlers"
	"github.com/theinterviewer/backend/internal/middleware"
	"github.com/theinterviewer/backend/internal/models"
)

type Dependencies struct {
	AuthHandler        *handlers.AuthHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	UserHandler        *handlers.UserHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimiter        *middleware.RateLimiter
	LoginRateLimit     int
	LoginRateWindow    time.Duration
}

// New wires the route table. Public routes: health, login/token, candidate
// signup and the job catalog reads. Everything else authenticates first and
// is then gated by role.
func New(deps Dependencies) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	loginLimit := middleware.RateLimit(deps.RateLimiter, deps.LoginRateLimit, deps.LoginRateWindow)

	r.GET("/health", handlers.HealthCheck)
	r.POST("/login", loginLimit, deps.AuthHandler.Login)
	r.POST("/token", loginLimit, deps.AuthHandler.Token)
	r.POST("/signup/candidate", deps.AuthHandler.SignupCandidate)
	r.GET("/jobs", deps.JobHandler.ListJobs)
	r.GET("/jobs/:id", deps.JobHandler.GetJob)

	authed := r.Group("/", deps.AuthMiddleware.Authenticate())

	authed.POST("/signup/hr",
		middleware.RequireRole("Only CEO can add HR", models.RoleCEO),
		deps.AuthHandler.SignupHR)

	hr := authed.Group("/hr")
	{
		hr.POST("/jobs",
			middleware.RequireRole("Only HR can create jobs", models.RoleHR),
			deps.JobHandler.CreateJob)
		hr.GET("/jobs",
			middleware.RequireRole("Only HR can view their jobs", models.RoleHR),
			deps.JobHandler.ListOwnJobs)
		hr.GET("/jobs/:id/applications",
			middleware.RequireRole("Only HR can view applications", models.RoleHR),
			deps.ApplicationHandler.ListForJob)
		hr.POST("/jobs/:id/questions",
			middleware.RequireRole("Only HR can generate questions", models.RoleHR),
			deps.JobHandler.SuggestQuestions)
		hr.PATCH("/applications/:id/status",
			middleware.RequireRole("Only HR can review applications", models.RoleHR),
			deps.ApplicationHandler.UpdateStatus)
	}

	authed.POST("/apply",
		middleware.RequireRole("Only candidates can apply", models.RoleCandidate),
		deps.ApplicationHandler.Apply)
	authed.GET("/candidate/applications",
		middleware.RequireRole("Only candidates can view their applications", models.RoleCandidate),
		deps.ApplicationHandler.ListOwn)

	authed.GET("/candidates",
		middleware.RequireRole("Only HR and CEO can view candidates", models.RoleHR, models.RoleCEO),
		deps.UserHandler.ListCandidates)

	return r
}
