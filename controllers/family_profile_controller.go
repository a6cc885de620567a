package controllers

import (
	"net/http"

	"nannyhub/middleware"
	"nannyhub/models"
	"nannyhub/services"

	"github.com/gin-gonic/gin"
)

type FamilyProfileController struct {
	profiles *services.ProfileService
}

func NewFamilyProfileController(profiles *services.ProfileService) *FamilyProfileController {
	return &FamilyProfileController{profiles: profiles}
}

// Upsert godoc
// @Summary Create or update the caller's family profile
// @Tags Family Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.FamilyProfileRequest true "Profile fields"
// @Success 200 {object} models.FamilyProfile
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/family_profiles [post]
func (ctrl *FamilyProfileController) Upsert(c *gin.Context) {
	var req models.FamilyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := ctrl.profiles.UpsertFamily(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Me godoc
// @Summary The caller's own family profile
// @Tags Family Profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.FamilyProfile
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/family_profiles/me [get]
func (ctrl *FamilyProfileController) Me(c *gin.Context) {
	profile, err := ctrl.profiles.GetFamilyByUser(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
