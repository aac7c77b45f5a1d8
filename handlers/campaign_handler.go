package handlers

import (
	"net/http"

	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignService.Create(currentUserID(c), req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// GetCampaigns lists campaigns the caller owns and campaigns joined
// through one of its characters.
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	userID := currentUserID(c)

	owned, err := h.campaignService.GetOwned(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	joined, err := h.campaignService.GetJoined(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"owned":   owned,
		"joined":  joined,
	})
}

func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignService.RequireMember(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.campaignService.Delete(currentUserID(c), campaignID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetJoinCode returns the campaign's shareable join code, issuing one on
// first request.
func (h *CampaignHandler) GetJoinCode(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	code, err := h.campaignService.JoinCode(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"code":    code.Code,
		"url":     h.campaignService.JoinURL(code),
	})
}

// RotateJoinCode replaces the join code, invalidating the old one.
func (h *CampaignHandler) RotateJoinCode(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	code, err := h.campaignService.RotateJoinCode(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"code":    code.Code,
		"url":     h.campaignService.JoinURL(code),
	})
}

// JoinCampaign attaches one of the caller's characters to the campaign
// behind a join code.
func (h *CampaignHandler) JoinCampaign(c *gin.Context) {
	var req struct {
		Code     string `json:"code" binding:"required"`
		PlayerID uint   `json:"player_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignService.Join(currentUserID(c), req.Code, req.PlayerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "playthrough": campaign})
}
