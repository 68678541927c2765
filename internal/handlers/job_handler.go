package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/dtos"
	"github.com/theinterviewer/backend/internal/middleware"
	"github.com/theinterviewer/backend/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
	LLM  *services.LLMService
}

// NewJobHandler creates the handler; llm may be nil when question
// suggestions are not configured.
func NewJobHandler(jobs *services.JobService, llm *services.LLMService) *JobHandler {
	return &JobHandler{Jobs: jobs, LLM: llm}
}

// CreateJob is POST /hr/jobs. The posting is owned by the calling HR.
func (h *JobHandler) CreateJob(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Jobs.CreateJob(c.Request.Context(), principal.ID, &req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs is GET /jobs, public summaries of every posting.
func (h *JobHandler) ListJobs(c *gin.Context) {
	summaries, err := h.Jobs.ListJobs(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetJob is GET /jobs/:id, the public full view of one posting.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}
	job, err := h.Jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListOwnJobs is GET /hr/jobs, the postings owned by the calling HR.
func (h *JobHandler) ListOwnJobs(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	jobs, err := h.Jobs.ListOwnJobs(c.Request.Context(), principal.ID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// SuggestQuestions is POST /hr/jobs/:id/questions. Owner-only; returns 503
// when no LLM is configured.
func (h *JobHandler) SuggestQuestions(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	if h.LLM == nil {
		middleware.AbortWithError(c, common.NewError(common.CodeUnavailable, "Question suggestions are not configured", nil))
		return
	}
	jobID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}
	job, err := h.Jobs.GetOwnJob(c.Request.Context(), principal.ID, jobID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	questions, err := h.LLM.SuggestInterviewQuestions(c.Request.Context(), job)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.QuestionSuggestionResponse{JobPostingID: job.ID, Questions: questions})
}

func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
