package handlers

import (
	"net/http"

	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

type EnemyHandler struct {
	enemyService *services.EnemyService
}

func NewEnemyHandler(enemyService *services.EnemyService) *EnemyHandler {
	return &EnemyHandler{
		enemyService: enemyService,
	}
}

func (h *EnemyHandler) GetEnemies(c *gin.Context) {
	enemies, err := h.enemyService.GetEnemies(currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "enemies": enemies})
}

func (h *EnemyHandler) GetEnemy(c *gin.Context) {
	enemyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	enemy, err := h.enemyService.GetEnemy(currentUserID(c), enemyID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, enemy)
}

type CreateEnemyRequest struct {
	Name       string               `json:"name" binding:"required"`
	MaxHP      int                  `json:"hp"`
	ArmorClass int                  `json:"ac"`
	Stats      *services.EnemyStats `json:"stats"`
}

func (h *EnemyHandler) CreateEnemy(c *gin.Context) {
	var req CreateEnemyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enemy, err := h.enemyService.CreateEnemy(currentUserID(c), req.Name, req.MaxHP, req.ArmorClass, req.Stats)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enemy)
}

type UpdateEnemyRequest struct {
	Name       string               `json:"name"`
	MaxHP      *int                 `json:"hp"`
	ArmorClass *int                 `json:"ac"`
	Stats      *services.EnemyStats `json:"stats"`
}

func (h *EnemyHandler) UpdateEnemy(c *gin.Context) {
	enemyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateEnemyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enemy, err := h.enemyService.UpdateEnemy(currentUserID(c), enemyID, req.Name, req.MaxHP, req.ArmorClass, req.Stats)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, enemy)
}

func (h *EnemyHandler) DeleteEnemy(c *gin.Context) {
	enemyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.enemyService.DeleteEnemy(currentUserID(c), enemyID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *EnemyHandler) GetAbilities(c *gin.Context) {
	enemyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	abilities, err := h.enemyService.GetAbilities(currentUserID(c), enemyID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "abilities": abilities})
}

func (h *EnemyHandler) AddAbility(c *gin.Context) {
	enemyID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ability, err := h.enemyService.AddAbility(currentUserID(c), enemyID, req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ability)
}

func (h *EnemyHandler) DeleteAbility(c *gin.Context) {
	abilityID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.enemyService.DeleteAbility(currentUserID(c), abilityID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
