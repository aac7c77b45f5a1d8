package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dmscreen/handlers"
	"dmscreen/models"
	"dmscreen/repository"
	"dmscreen/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Player{},
		&models.PlayerInfo{},
		&models.PlayerProficiency{},
		&models.Item{},
		&models.Weapon{},
		&models.PlayerEquipment{},
		&models.Spell{},
		&models.PlayerSpell{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupRouter wires the player handler behind a stub auth middleware that
// injects the given user.
func setupRouter(db *gorm.DB, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	playerService := services.NewPlayerService(
		repository.NewPlayerRepository(db),
		repository.NewItemRepository(db),
		repository.NewSpellRepository(db),
		repository.NewCampaignRepository(db),
	)
	handler := handlers.NewPlayerHandler(playerService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("user_name", user.Name)
		c.Next()
	})
	router.POST("/api/user/player", handler.CreateUserPlayer)
	router.GET("/api/user/players", handler.GetUserPlayers)
	router.GET("/api/players/:id/info", handler.GetPlayerInfo)
	router.PUT("/api/players/:id/info", handler.SetPlayerInfo)
	router.DELETE("/api/players/:id", handler.DeletePlayer)
	return router
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.NewUser(name, []byte("hash"), "")
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func TestCreateUserPlayerDefaults(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "alice")
	router := setupRouter(db, user)

	body, _ := json.Marshal(gin.H{"class": "Wizard"})
	req := httptest.NewRequest("POST", "/api/user/player", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var player models.Player
	if err := db.First(&player).Error; err != nil {
		t.Fatalf("Expected a player row: %v", err)
	}
	if player.Name != "alice" {
		t.Errorf("Expected name to default to the account name, got %q", player.Name)
	}
	if player.RaceName != "Human" {
		t.Errorf("Expected race to default to Human, got %q", player.RaceName)
	}
	if player.ClassName != "Wizard" {
		t.Errorf("Expected class Wizard, got %q", player.ClassName)
	}
}

func TestGetPlayerInfoEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "alice")
	router := setupRouter(db, user)

	player := models.NewPlayer("Rog", nil, user.ID)
	player.RaceName = "Human"
	player.ClassName = "Rogue"
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/players/1/info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var info models.PlayerInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if info.MaxHP != 10 || info.Level != 1 {
		t.Errorf("Expected default sheet in response, got %+v", info)
	}
}

func TestSetPlayerInfoUnknownPlayerStatus(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "alice")
	router := setupRouter(db, user)

	body, _ := json.Marshal(gin.H{"level": 5})
	req := httptest.NewRequest("PUT", "/api/players/999/info", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown player, got %d", w.Code)
	}
}

func TestDeletePlayerForbiddenStatus(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "alice")
	intruder := createUser(t, db, "bob")

	player := models.NewPlayer("Rog", nil, owner.ID)
	player.RaceName = "Human"
	player.ClassName = "Rogue"
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}

	router := setupRouter(db, intruder)
	req := httptest.NewRequest("DELETE", "/api/players/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for someone else's player, got %d", w.Code)
	}

	var count int64
	db.Model(&models.Player{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected the player to survive, got %d rows", count)
	}
}

func TestInvalidIDParam(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "alice")
	router := setupRouter(db, user)

	req := httptest.NewRequest("GET", "/api/players/abc/info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a non-numeric id, got %d", w.Code)
	}
}
