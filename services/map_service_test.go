package services_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dmscreen/repository"
	"dmscreen/services"

	"gorm.io/gorm"
)

func newMapService(t *testing.T, db *gorm.DB) *services.MapService {
	t.Helper()

	return services.NewMapService(
		repository.NewMapRepository(db),
		repository.NewPlayerRepository(db),
		newCampaignService(db),
		t.TempDir(),
	)
}

func TestCreateMapStoresFile(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()
	svc := services.NewMapService(
		repository.NewMapRepository(db),
		repository.NewPlayerRepository(db),
		newCampaignService(db),
		dir,
	)

	owner := createTestUser(t, db, "alice")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")

	m, err := svc.CreateMap(owner.ID, campaign.ID, "Overworld", "world.png",
		strings.NewReader("fake image bytes"), 0, 0, nil)
	if err != nil {
		t.Fatalf("CreateMap failed: %v", err)
	}
	if !strings.HasPrefix(m.MapURL, "/uploads/") || !strings.HasSuffix(m.MapURL, ".png") {
		t.Errorf("Expected an /uploads/ URL with the original extension, got %q", m.MapURL)
	}

	stored := filepath.Join(dir, strings.TrimPrefix(m.MapURL, "/uploads/"))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("Expected stored file at %s: %v", stored, err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("Expected file contents to round-trip, got %q", data)
	}
}

func TestCreateMapParentChecks(t *testing.T) {
	db := setupTestDB(t)
	svc := newMapService(t, db)

	owner := createTestUser(t, db, "alice")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")
	other := createTestCampaign(t, db, owner.ID, "Other")

	foreign, err := svc.CreateMap(owner.ID, other.ID, "Elsewhere", "e.png",
		strings.NewReader("x"), 0, 0, nil)
	if err != nil {
		t.Fatalf("CreateMap failed: %v", err)
	}

	// A parent from another campaign does not exist from here.
	_, err = svc.CreateMap(owner.ID, campaign.ID, "Town", "t.png",
		strings.NewReader("x"), 1, 2, &foreign.ID)
	wantKind(t, err, services.KindNotFound)

	_, err = svc.CreateMap(owner.ID, campaign.ID, "", "t.png",
		strings.NewReader("x"), 0, 0, nil)
	wantKind(t, err, services.KindValidation)
}

func TestGetMapWithChildren(t *testing.T) {
	db := setupTestDB(t)
	svc := newMapService(t, db)

	owner := createTestUser(t, db, "alice")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")

	root, err := svc.CreateMap(owner.ID, campaign.ID, "Overworld", "w.png",
		strings.NewReader("x"), 0, 0, nil)
	if err != nil {
		t.Fatalf("CreateMap failed: %v", err)
	}
	child, err := svc.CreateMap(owner.ID, campaign.ID, "Town", "t.png",
		strings.NewReader("x"), 10, 20, &root.ID)
	if err != nil {
		t.Fatalf("CreateMap failed: %v", err)
	}

	node, err := svc.GetMap(owner.ID, campaign.ID, root.ID)
	if err != nil {
		t.Fatalf("GetMap failed: %v", err)
	}
	if len(node.Children) != 1 || node.Children[0].ID != child.ID {
		t.Errorf("Expected one child %d, got %+v", child.ID, node.Children)
	}

	roots, err := svc.GetRoots(owner.ID, campaign.ID)
	if err != nil {
		t.Fatalf("GetRoots failed: %v", err)
	}
	if len(roots) != 1 || roots[0].ID != root.ID {
		t.Errorf("Expected only the root at top level, got %+v", roots)
	}
}

func TestSetParentRejectsCycles(t *testing.T) {
	db := setupTestDB(t)
	svc := newMapService(t, db)

	owner := createTestUser(t, db, "alice")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")

	a, err := svc.CreateMap(owner.ID, campaign.ID, "A", "a.png", strings.NewReader("x"), 0, 0, nil)
	if err != nil {
		t.Fatalf("CreateMap failed: %v", err)
	}
	b, err := svc.CreateMap(owner.ID, campaign.ID, "B", "b.png", strings.NewReader("x"), 0, 0, &a.ID)
	if err != nil {
		t.Fatalf("CreateMap failed: %v", err)
	}
	c, err := svc.CreateMap(owner.ID, campaign.ID, "C", "c.png", strings.NewReader("x"), 0, 0, &b.ID)
	if err != nil {
		t.Fatalf("CreateMap failed: %v", err)
	}

	// A under C would close the loop A -> B -> C -> A.
	_, err = svc.SetParent(owner.ID, campaign.ID, a.ID, &c.ID)
	wantKind(t, err, services.KindValidation)

	_, err = svc.SetParent(owner.ID, campaign.ID, a.ID, &a.ID)
	wantKind(t, err, services.KindValidation)

	// A legal move still works: C directly under A.
	moved, err := svc.SetParent(owner.ID, campaign.ID, c.ID, &a.ID)
	if err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}
	if moved.ParentMapID == nil || *moved.ParentMapID != a.ID {
		t.Errorf("Expected C under A, got %v", moved.ParentMapID)
	}

	// Detaching to root is always allowed.
	detached, err := svc.SetParent(owner.ID, campaign.ID, b.ID, nil)
	if err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}
	if detached.ParentMapID != nil {
		t.Errorf("Expected B detached, got %v", detached.ParentMapID)
	}
}

func TestSaveCreatedMapValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newMapService(t, db)

	owner := createTestUser(t, db, "alice")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")

	_, err := svc.SaveCreatedMap(owner.ID, campaign.ID, "", "aGVsbG8=", 32, "square")
	wantKind(t, err, services.KindValidation)

	_, err = svc.SaveCreatedMap(owner.ID, campaign.ID, "Dungeon", "", 32, "square")
	wantKind(t, err, services.KindValidation)

	m, err := svc.SaveCreatedMap(owner.ID, campaign.ID, "Dungeon", "aGVsbG8=", 32, "square")
	if err != nil {
		t.Fatalf("SaveCreatedMap failed: %v", err)
	}
	if m.GridSize != 32 || m.GridType != "square" {
		t.Errorf("Expected grid settings kept, got %+v", m)
	}

	maps, err := svc.GetCreatedMaps(owner.ID, campaign.ID)
	if err != nil {
		t.Fatalf("GetCreatedMaps failed: %v", err)
	}
	if len(maps) != 1 {
		t.Errorf("Expected one created map, got %d", len(maps))
	}
}

func TestSaveBattlemapCreditsPlayer(t *testing.T) {
	db := setupTestDB(t)
	svc := newMapService(t, db)

	owner := createTestUser(t, db, "alice")
	member := createTestUser(t, db, "bob")
	campaign := createTestCampaign(t, db, owner.ID, "Lost Mines")
	player := createTestPlayer(t, db, member.ID, &campaign.ID, "Rog")

	m, err := svc.SaveBattlemap(member.ID, campaign.ID, "Ambush", "{}")
	if err != nil {
		t.Fatalf("SaveBattlemap failed: %v", err)
	}
	if m.CreatorID == nil || *m.CreatorID != player.ID {
		t.Errorf("Expected creator player %d, got %v", player.ID, m.CreatorID)
	}

	// The owner has no player, so no creator is recorded.
	m, err = svc.SaveBattlemap(owner.ID, campaign.ID, "DM Map", "{}")
	if err != nil {
		t.Fatalf("SaveBattlemap failed: %v", err)
	}
	if m.CreatorID != nil {
		t.Errorf("Expected nil creator for the owner, got %v", m.CreatorID)
	}
}
