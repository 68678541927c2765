package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theinterviewer/backend/internal/middleware"
	"github.com/theinterviewer/backend/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// ListCandidates is GET /candidates. The route is limited to HR and CEO so
// candidate contact details are not exposed to other candidates.
func (h *UserHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.Users.ListCandidates(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}
