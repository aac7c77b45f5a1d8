package handlers

import (
	"net/http"

	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logService *services.LogService
}

func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

func (h *LogHandler) GetLogs(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	logs, err := h.logService.GetLogs(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}

func (h *LogHandler) CreateLog(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title" binding:"required"`
		Text  string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logEntry, err := h.logService.CreateLog(currentUserID(c), campaignID, req.Title, req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, logEntry)
}

func (h *LogHandler) DeleteLog(c *gin.Context) {
	logID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.logService.DeleteLog(currentUserID(c), logID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
