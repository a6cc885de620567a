package controllers

import (
	"net/http"
	"strconv"

	"nannyhub/middleware"
	"nannyhub/models"
	"nannyhub/services"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	contacts *services.ContactService
}

func NewMessageController(contacts *services.ContactService) *MessageController {
	return &MessageController{contacts: contacts}
}

// Create godoc
// @Summary Post a message to a thread
// @Tags Messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.MessageRequest true "Thread and body"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/messages [post]
func (ctrl *MessageController) Create(c *gin.Context) {
	var req models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "contact_request_id and body are required"})
		return
	}

	message, err := ctrl.contacts.CreateMessage(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// List godoc
// @Summary Messages in a thread, oldest first
// @Tags Messages
// @Security BearerAuth
// @Produce json
// @Param contact_request_id query int true "Thread ID"
// @Success 200 {object} map[string][]models.Message
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/messages [get]
func (ctrl *MessageController) List(c *gin.Context) {
	contactRequestID, err := strconv.Atoi(c.Query("contact_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "contact_request_id is required"})
		return
	}

	messages, err := ctrl.contacts.ListMessages(c.Request.Context(), middleware.CurrentUser(c), contactRequestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": messages})
}

// Last godoc
// @Summary Most recent message across the caller's threads
// @Description Returns a null message when the caller has none
// @Tags Messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /api/messages/last [get]
func (ctrl *MessageController) Last(c *gin.Context) {
	message, err := ctrl.contacts.LastMessage(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if message == nil {
		c.JSON(http.StatusOK, gin.H{"message": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
