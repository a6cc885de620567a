package controllers

import (
	"errors"
	"log"
	"net/http"

	"nannyhub/middleware"
	"nannyhub/models"
	"nannyhub/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// respondError translates the API error taxonomy to the wire; anything
// else is a 500 with the detail kept server-side.
func respondError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, models.ErrorResponse{Error: apiErr.Message})
		return
	}
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
}

func publicUser(user *models.User) models.UserResponse {
	return models.UserResponse{ID: user.ID, Email: user.Email, Role: user.Role}
}

// Register godoc
// @Summary Register a new account
// @Description Create a nanny or family account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email, password, and role are required"})
		return
	}

	user, err := ctrl.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, publicUser(user))
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and mint a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email and password are required"})
		return
	}

	token, user, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: publicUser(user)})
}

// Logout godoc
// @Summary Log out
// @Description Revoke the presented session token; repeated calls succeed
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} models.ErrorResponse
// @Router /api/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing token"})
		return
	}

	if err := ctrl.auth.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me godoc
// @Summary Current user
// @Description Resolve the bearer token to its account
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, publicUser(user))
}
