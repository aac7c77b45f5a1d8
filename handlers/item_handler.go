package handlers

import (
	"net/http"

	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemService  *services.ItemService
	spellService *services.SpellService
}

func NewItemHandler(itemService *services.ItemService, spellService *services.SpellService) *ItemHandler {
	return &ItemHandler{
		itemService:  itemService,
		spellService: spellService,
	}
}

// GetItems lists the items visible from a campaign: base game plus
// homebrew.
func (h *ItemHandler) GetItems(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	items, err := h.itemService.GetItems(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(itemID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type CreateItemRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Category string                 `json:"category" binding:"required"`
	Cost     int                    `json:"cost"`
	Weight   int                    `json:"weight"`
	Weapon   *services.WeaponFields `json:"weapon"`
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.itemService.CreateItem(currentUserID(c), campaignID, req.Name, req.Category, req.Cost, req.Weight, req.Weapon)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(currentUserID(c), itemID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSpells lists the spells visible from a campaign.
func (h *ItemHandler) GetSpells(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	spells, err := h.spellService.GetSpells(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "spells": spells})
}

func (h *ItemHandler) GetSpell(c *gin.Context) {
	spellID, ok := paramID(c, "id")
	if !ok {
		return
	}

	spell, err := h.spellService.GetSpell(spellID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, spell)
}

func (h *ItemHandler) CreateSpell(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var fields services.SpellFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spell, err := h.spellService.CreateSpell(currentUserID(c), campaignID, &fields)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, spell)
}

func (h *ItemHandler) DeleteSpell(c *gin.Context) {
	spellID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.spellService.DeleteSpell(currentUserID(c), spellID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
