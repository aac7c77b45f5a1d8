package handlers

import (
	"encoding/json"
	"net/http"

	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// GetUserPlayers lists all of the caller's characters across campaigns.
func (h *PlayerHandler) GetUserPlayers(c *gin.Context) {
	players, err := h.playerService.GetUserPlayers(currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := make([]gin.H, 0, len(players))
	for _, player := range players {
		data = append(data, gin.H{
			"id":        player.ID,
			"user_name": player.User.Name,
			"name":      player.Name,
			"race":      player.RaceName,
			"class":     player.ClassName,
			"backstory": player.Backstory,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"players": data,
	})
}

func (h *PlayerHandler) GetClasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"classes": h.playerService.Classes(),
		"error":   "",
	})
}

type CreatePlayerRequest struct {
	Name       string `json:"name"`
	Race       string `json:"race"`
	Class      string `json:"class"`
	Backstory  string `json:"backstory"`
	CampaignID *uint  `json:"playthrough_id"`
}

// CreateUserPlayer creates a character for the caller. Name defaults to
// the account name, race to Human.
func (h *PlayerHandler) CreateUserPlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		req.Name = currentUserName(c)
	}
	if req.Race == "" {
		req.Race = "Human"
	}

	player, err := h.playerService.CreatePlayer(currentUserID(c), req.Name, req.Race, req.Class, req.Backstory, req.CampaignID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"success":   false,
			"player_id": nil,
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"player_id": player.ID,
		"error":     "",
	})
}

// GetCampaignPlayers lists the players in a campaign, backstories
// stripped of markup.
func (h *PlayerHandler) GetCampaignPlayers(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	players, err := h.playerService.GetPlayers(campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "players": players})
}

type UpdatePlayerRequest struct {
	Name      string `json:"name" binding:"required"`
	Race      string `json:"race" binding:"required"`
	Class     string `json:"class" binding:"required"`
	Backstory string `json:"backstory"`
}

func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.UpdatePlayer(currentUserID(c), playerID, req.Name, req.Race, req.Class, req.Backstory)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.playerService.DeletePlayer(currentUserID(c), playerID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PlayerHandler) GetPlayerInfo(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	info, err := h.playerService.GetPlayerInfo(playerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *PlayerHandler) SetPlayerInfo(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var update services.PlayerInfoUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.playerService.SetPlayerInfo(playerID, &update)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *PlayerHandler) GetProficiencies(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	proficiencies, err := h.playerService.GetPlayerProficiencies(playerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, proficiencies)
}

func (h *PlayerHandler) UpdateProficiencies(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var update services.ProficiencyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proficiencies, err := h.playerService.UpdateProficiencies(playerID, &update)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, proficiencies)
}

func (h *PlayerHandler) GetPlayerItems(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	items, err := h.playerService.GetPlayerItems(playerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

type AddItemRequest struct {
	ItemID uint `json:"item_id" binding:"required"`
	// Amount arrives as whatever the client sends; anything that does
	// not parse as an integer falls back to 1.
	Amount json.Number `json:"amount"`
}

func (h *PlayerHandler) AddPlayerItem(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.playerService.AddItem(playerID, req.ItemID, req.Amount.String())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, equipment)
}

func (h *PlayerHandler) DeletePlayerItem(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemID")
	if !ok {
		return
	}

	if err := h.playerService.DeleteItem(currentUserID(c), playerID, itemID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PlayerHandler) GetPlayerSpells(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	spells, err := h.playerService.GetPlayerSpells(playerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "spells": spells})
}

func (h *PlayerHandler) AddPlayerSpell(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		SpellID uint `json:"spell_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playerSpell, err := h.playerService.AddSpell(playerID, req.SpellID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, playerSpell)
}

func (h *PlayerHandler) DeletePlayerSpell(c *gin.Context) {
	playerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	spellID, ok := paramID(c, "spellID")
	if !ok {
		return
	}

	if err := h.playerService.DeleteSpell(currentUserID(c), playerID, spellID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
