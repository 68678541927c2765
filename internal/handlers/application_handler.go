package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theinterviewer/backend/internal/dtos"
	"github.com/theinterviewer/backend/internal/middleware"
	"github.com/theinterviewer/backend/internal/models"
	"github.com/theinterviewer/backend/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Apply is POST /apply, candidate-only.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Applications.Apply(c.Request.Context(), principal.ID, &req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListOwn is GET /candidate/applications.
func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	apps, err := h.Applications.ListOwn(c.Request.Context(), principal.ID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	if apps == nil {
		apps = []models.CandidateApplication{}
	}
	c.JSON(http.StatusOK, apps)
}

// ListForJob is GET /hr/jobs/:id/applications, owner-only.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	jobID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}
	apps, err := h.Applications.ListForJob(c.Request.Context(), principal.ID, jobID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	if apps == nil {
		apps = []models.CandidateApplication{}
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus is PATCH /hr/applications/:id/status, the review flow.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	applicationID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}
	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Applications.UpdateStatus(c.Request.Context(), principal.ID, applicationID, req.Status)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
