package handlers

import (
	"net/http"

	"dmscreen/models"
	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// GetMessages returns a campaign's full chat history to its owner.
// Failures return an error and an empty list, never partial data.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	messages, err := h.messageService.GetMessages(campaignID, currentUserID(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error":    err.Error(),
			"messages": []models.Message{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":    "",
		"messages": messages,
	})
}

// CreateMessage posts a chat line to the campaign behind a join code.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req struct {
		Code    string `json:"playthrough_code" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.CreateMessage(req.Code, currentUserID(c), req.Message)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}
