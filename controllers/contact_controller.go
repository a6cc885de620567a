package controllers

import (
	"net/http"
	"strconv"

	"nannyhub/middleware"
	"nannyhub/models"
	"nannyhub/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{contacts: contacts}
}

// Create godoc
// @Summary Send a contact request to a nanny
// @Tags Contact Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ContactRequestRequest true "Target nanny and message"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/contact_requests [post]
func (ctrl *ContactController) Create(c *gin.Context) {
	var req models.ContactRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "nanny_id and message are required"})
		return
	}

	request, err := ctrl.contacts.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": request.ID, "status": request.Status})
}

// List godoc
// @Summary Threads the caller participates in
// @Tags Contact Requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string][]models.ContactRequestThread
// @Failure 401 {object} models.ErrorResponse
// @Router /api/contact_requests [get]
func (ctrl *ContactController) List(c *gin.Context) {
	threads, err := ctrl.contacts.ListForUser(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": threads})
}

// Delete godoc
// @Summary Delete a thread
// @Description Removes the thread and its messages for a participant
// @Tags Contact Requests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contact request ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/contact_requests/{id} [delete]
func (ctrl *ContactController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	if err := ctrl.contacts.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
