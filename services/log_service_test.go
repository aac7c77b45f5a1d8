package services_test

import (
	"testing"

	"dmscreen/repository"
	"dmscreen/services"

	"gorm.io/gorm"
)

func newLogService(db *gorm.DB) *services.LogService {
	return services.NewLogService(
		repository.NewLogRepository(db),
		repository.NewPlayerRepository(db),
		newCampaignService(db),
	)
}

func TestCreateLogCreditsPlayer(t *testing.T) {
	db := setupTestDB(t)
	svc := newLogService(db)

	owner := createTestUser(t, db, "alice")
	member := createTestUser(t, db, "bob")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")
	player := createTestPlayer(t, db, member.ID, &campaign.ID, "Rog")

	entry, err := svc.CreateLog(member.ID, campaign.ID, "Session 1", "We met in a tavern.")
	if err != nil {
		t.Fatalf("CreateLog failed: %v", err)
	}
	if entry.CreatorID == nil || *entry.CreatorID != player.ID {
		t.Errorf("Expected creator player %d, got %v", player.ID, entry.CreatorID)
	}

	_, err = svc.CreateLog(member.ID, campaign.ID, "", "text")
	wantKind(t, err, services.KindValidation)

	_, err = svc.CreateLog(member.ID, campaign.ID, "title", "")
	wantKind(t, err, services.KindValidation)
}

func TestGetLogsMembersOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newLogService(db)

	owner := createTestUser(t, db, "alice")
	outsider := createTestUser(t, db, "carol")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")

	if _, err := svc.CreateLog(owner.ID, campaign.ID, "Session 1", "Notes."); err != nil {
		t.Fatalf("CreateLog failed: %v", err)
	}

	logs, err := svc.GetLogs(owner.ID, campaign.ID)
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("Expected 1 log, got %d", len(logs))
	}

	_, err = svc.GetLogs(outsider.ID, campaign.ID)
	wantKind(t, err, services.KindForbidden)
}

func TestDeleteLogPermissions(t *testing.T) {
	db := setupTestDB(t)
	svc := newLogService(db)

	owner := createTestUser(t, db, "alice")
	writer := createTestUser(t, db, "bob")
	bystander := createTestUser(t, db, "carol")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")
	createTestPlayer(t, db, writer.ID, &campaign.ID, "Rog")
	createTestPlayer(t, db, bystander.ID, &campaign.ID, "Mage")

	entry, err := svc.CreateLog(writer.ID, campaign.ID, "Session 1", "Notes.")
	if err != nil {
		t.Fatalf("CreateLog failed: %v", err)
	}

	// Another member may read but not delete someone else's entry.
	err = svc.DeleteLog(bystander.ID, entry.ID)
	wantKind(t, err, services.KindForbidden)

	if err := svc.DeleteLog(writer.ID, entry.ID); err != nil {
		t.Fatalf("Writer delete failed: %v", err)
	}

	entry, err = svc.CreateLog(writer.ID, campaign.ID, "Session 2", "More notes.")
	if err != nil {
		t.Fatalf("CreateLog failed: %v", err)
	}
	if err := svc.DeleteLog(owner.ID, entry.ID); err != nil {
		t.Fatalf("Owner delete failed: %v", err)
	}

	err = svc.DeleteLog(owner.ID, entry.ID)
	wantKind(t, err, services.KindNotFound)
}
