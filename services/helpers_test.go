package services_test

import (
	"testing"
	"time"

	"dmscreen/models"
	"dmscreen/repository"
	"dmscreen/services"

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
		&models.EmailReset{},
		&models.Campaign{},
		&models.CampaignJoinCode{},
		&models.Player{},
		&models.PlayerInfo{},
		&models.PlayerProficiency{},
		&models.Item{},
		&models.Weapon{},
		&models.PlayerEquipment{},
		&models.Spell{},
		&models.PlayerSpell{},
		&models.Map{},
		&models.CreatedMap{},
		&models.Battlemap{},
		&models.Message{},
		&models.Log{},
		&models.Enemy{},
		&models.EnemyAbility{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func newPlayerService(db *gorm.DB) *services.PlayerService {
	return services.NewPlayerService(
		repository.NewPlayerRepository(db),
		repository.NewItemRepository(db),
		repository.NewSpellRepository(db),
		repository.NewCampaignRepository(db),
	)
}

func newCampaignService(db *gorm.DB) *services.CampaignService {
	return services.NewCampaignService(
		repository.NewCampaignRepository(db),
		repository.NewPlayerRepository(db),
		"http://localhost:8080",
	)
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.NewUser(name, []byte("hash"), name+"@example.com")
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func createTestCampaign(t *testing.T, db *gorm.DB, userID uint, name string) *models.Campaign {
	t.Helper()

	campaign := models.NewCampaign(name, time.Now(), userID)
	if err := db.Create(campaign).Error; err != nil {
		t.Fatalf("Failed to create test campaign: %v", err)
	}
	return campaign
}

func createTestPlayer(t *testing.T, db *gorm.DB, userID uint, campaignID *uint, name string) *models.Player {
	t.Helper()

	player := models.NewPlayer(name, campaignID, userID)
	player.RaceName = "Human"
	player.ClassName = "Fighter"
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}
	return player
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
func uintPtr(v uint) *uint { return &v }

// wantKind asserts the error carries the expected classification.
func wantKind(t *testing.T, err error, kind services.ErrorKind) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected %v error, got nil", kind)
	}
	if got := services.KindOf(err); got != kind {
		t.Fatalf("Expected %v error, got %v: %v", kind, got, err)
	}
}
