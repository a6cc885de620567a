package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nannyhub/middleware"
	"nannyhub/models"
	"nannyhub/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type NannyProfileController struct {
	profiles *services.ProfileService
	auth     *services.AuthService
	cache    *redis.Client
}

// cache may be nil; listing then always hits the database.
func NewNannyProfileController(profiles *services.ProfileService, auth *services.AuthService, cache *redis.Client) *NannyProfileController {
	return &NannyProfileController{profiles: profiles, auth: auth, cache: cache}
}

func listCacheKey(city, zip, minExperience, maxRate string) string {
	return fmt.Sprintf("nanny_profiles_c%s_z%s_e%s_r%s", city, zip, minExperience, maxRate)
}

func (ctrl *NannyProfileController) invalidateListCache() {
	if ctrl.cache == nil {
		return
	}
	ctx := context.Background()
	iter := ctrl.cache.Scan(ctx, 0, "nanny_profiles_*", 0).Iterator()
	for iter.Next(ctx) {
		ctrl.cache.Del(ctx, iter.Val())
	}
}

// Upsert godoc
// @Summary Create or update the caller's nanny profile
// @Description Idempotent write keyed on the owning user
// @Tags Nanny Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.NannyProfileRequest true "Profile fields"
// @Success 200 {object} models.NannyProfile
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/nanny_profiles [post]
func (ctrl *NannyProfileController) Upsert(c *gin.Context) {
	var req models.NannyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := ctrl.profiles.UpsertNanny(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctrl.invalidateListCache()
	c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary Search nanny profiles
// @Description Public listing with optional AND-combined filters
// @Tags Nanny Profiles
// @Produce json
// @Param city query string false "Case-insensitive city match"
// @Param zip query string false "Exact zip match"
// @Param min_experience query int false "Minimum years of experience"
// @Param max_rate query number false "Maximum preferred rate"
// @Success 200 {object} map[string][]models.NannyProfile
// @Router /api/nanny_profiles [get]
func (ctrl *NannyProfileController) List(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	zip := strings.TrimSpace(c.Query("zip"))
	minExperienceRaw := strings.TrimSpace(c.Query("min_experience"))
	maxRateRaw := strings.TrimSpace(c.Query("max_rate"))

	cacheKey := listCacheKey(city, zip, minExperienceRaw, maxRateRaw)
	ctx := context.Background()

	if ctrl.cache != nil {
		cached, err := ctrl.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	filter := models.NannyProfileFilter{City: city, Zip: zip}
	if minExperienceRaw != "" {
		if minExperience, err := strconv.Atoi(minExperienceRaw); err == nil {
			filter.MinExperience = &minExperience
		}
	}
	if maxRateRaw != "" {
		if maxRate, err := strconv.ParseFloat(maxRateRaw, 64); err == nil {
			filter.MaxRate = &maxRate
		}
	}

	profiles, err := ctrl.profiles.ListNannies(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"results": profiles}

	if ctrl.cache != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			ctrl.cache.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, response)
}

// Me godoc
// @Summary The caller's own nanny profile
// @Tags Nanny Profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.NannyProfile
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/nanny_profiles/me [get]
func (ctrl *NannyProfileController) Me(c *gin.Context) {
	// Reached through the public :id route, so auth is resolved here
	// rather than by RequireAuth.
	token := middleware.BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}
	user, err := ctrl.auth.ResolveUser(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := ctrl.profiles.GetNannyByUser(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Get godoc
// @Summary Fetch one nanny profile
// @Tags Nanny Profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} models.NannyProfile
// @Failure 404 {object} models.ErrorResponse
// @Router /api/nanny_profiles/{id} [get]
func (ctrl *NannyProfileController) Get(c *gin.Context) {
	// "me" shares the wildcard slot with numeric ids.
	if c.Param("id") == "me" {
		ctrl.Me(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	profile, err := ctrl.profiles.GetNanny(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
