package handlers

import (
	"net/http"
	"strconv"

	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

type MapHandler struct {
	mapService *services.MapService
}

func NewMapHandler(mapService *services.MapService) *MapHandler {
	return &MapHandler{
		mapService: mapService,
	}
}

// UploadMap accepts a multipart map image upload. The file, campaign id,
// position and parent id are all required; a parent id of 0 makes the map
// a root.
func (h *MapHandler) UploadMap(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No file was uploaded.",
		})
		return
	}

	campaignID, ok := formUint(c, "playthrough_id")
	if !ok {
		return
	}
	x, ok := formInt(c, "x")
	if !ok {
		return
	}
	y, ok := formInt(c, "y")
	if !ok {
		return
	}
	parent, ok := formUint(c, "parent_id")
	if !ok {
		return
	}
	var parentID *uint
	if parent != 0 {
		parentID = &parent
	}

	name := c.PostForm("name")
	if name == "" {
		name = file.Filename
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file."})
		return
	}
	defer src.Close()

	m, err := h.mapService.CreateMap(currentUserID(c), campaignID, name, file.Filename, src, x, y, parentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GetMap returns one campaign map with its direct children.
func (h *MapHandler) GetMap(c *gin.Context) {
	var req struct {
		CampaignID uint `json:"playthrough_id" binding:"required"`
		MapID      uint `json:"map_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	node, err := h.mapService.GetMap(currentUserID(c), req.CampaignID, req.MapID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, node)
}

// GetMaps lists a campaign's root maps.
func (h *MapHandler) GetMaps(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	maps, err := h.mapService.GetRoots(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "maps": maps})
}

// MoveMap reattaches a map under a new parent. A parent id of 0 detaches
// the map into a root.
func (h *MapHandler) MoveMap(c *gin.Context) {
	mapID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		CampaignID uint `json:"playthrough_id" binding:"required"`
		ParentID   uint `json:"parent_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var parentID *uint
	if req.ParentID != 0 {
		parentID = &req.ParentID
	}

	m, err := h.mapService.SetParent(currentUserID(c), req.CampaignID, mapID, parentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type CreatedMapRequest struct {
	Name      string `json:"name" binding:"required"`
	MapBase64 string `json:"map_base64" binding:"required"`
	GridSize  int    `json:"grid_size"`
	GridType  string `json:"grid_type"`
}

func (h *MapHandler) SaveCreatedMap(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreatedMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.mapService.SaveCreatedMap(currentUserID(c), campaignID, req.Name, req.MapBase64, req.GridSize, req.GridType)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MapHandler) GetCreatedMaps(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	maps, err := h.mapService.GetCreatedMaps(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "maps": maps})
}

func (h *MapHandler) SaveBattlemap(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
		Data string `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.mapService.SaveBattlemap(currentUserID(c), campaignID, req.Name, req.Data)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MapHandler) GetBattlemaps(c *gin.Context) {
	campaignID, ok := paramID(c, "id")
	if !ok {
		return
	}

	maps, err := h.mapService.GetBattlemaps(currentUserID(c), campaignID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "battlemaps": maps})
}

func formInt(c *gin.Context, field string) (int, bool) {
	value, exists := c.GetPostForm(field)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + field})
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + field})
		return 0, false
	}
	return n, true
}

func formUint(c *gin.Context, field string) (uint, bool) {
	n, ok := formInt(c, field)
	if !ok {
		return 0, false
	}
	if n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + field})
		return 0, false
	}
	return uint(n), true
}
