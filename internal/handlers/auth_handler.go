package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theinterviewer/backend/internal/dtos"
	"github.com/theinterviewer/backend/internal/middleware"
	"github.com/theinterviewer/backend/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// Login is POST /login: JSON credential exchange for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	token, role, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{AccessToken: token, TokenType: "bearer", Role: string(role)})
}

type oauthTokenForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Token is POST /token: the OAuth2-password-compatible form variant of login,
// kept for clients that speak the standard form flow.
func (h *AuthHandler) Token(c *gin.Context) {
	var form oauthTokenForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}
	token, role, err := h.Auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{AccessToken: token, TokenType: "bearer", Role: string(role)})
}

// SignupCandidate is POST /signup/candidate, open to anyone.
func (h *AuthHandler) SignupCandidate(c *gin.Context) {
	var req dtos.CandidateSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	candidate, err := h.Auth.SignupCandidate(c.Request.Context(), &req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// SignupHR is POST /signup/hr; the route is restricted to the CEO.
func (h *AuthHandler) SignupHR(c *gin.Context) {
	var req dtos.HRSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	hr, err := h.Auth.SignupHR(c.Request.Context(), &req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hr)
}
