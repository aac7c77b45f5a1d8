package services_test

import (
	"testing"

	"dmscreen/models"
	"dmscreen/services"
)

func TestGetPlayerInfoDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	player := createTestPlayer(t, db, user.ID, nil, "Rog")

	info, err := svc.GetPlayerInfo(player.ID)
	if err != nil {
		t.Fatalf("GetPlayerInfo failed: %v", err)
	}

	if info.Strength != 1 || info.Dexterity != 1 || info.Constitution != 1 ||
		info.Intelligence != 1 || info.Wisdom != 1 || info.Charisma != 1 {
		t.Errorf("Expected all ability scores to default to 1, got %+v", info)
	}
	if info.MaxHP != 10 {
		t.Errorf("Expected default max HP 10, got %d", info.MaxHP)
	}
	if info.ArmorClass != 10 {
		t.Errorf("Expected default armor class 10, got %d", info.ArmorClass)
	}
	if info.Speed != 60 {
		t.Errorf("Expected default speed 60, got %d", info.Speed)
	}
	if info.Level != 1 {
		t.Errorf("Expected default level 1, got %d", info.Level)
	}

	// A second read must reuse the same row, not insert another.
	again, err := svc.GetPlayerInfo(player.ID)
	if err != nil {
		t.Fatalf("Second GetPlayerInfo failed: %v", err)
	}
	if again.ID != info.ID {
		t.Errorf("Expected the same info row on repeat access, got %d then %d", info.ID, again.ID)
	}

	var count int64
	db.Model(&models.PlayerInfo{}).Where("player_id = ?", player.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly one info row, got %d", count)
	}
}

func TestGetPlayerInfoUnknownPlayer(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	_, err := svc.GetPlayerInfo(999)
	wantKind(t, err, services.KindNotFound)
}

func TestSetPlayerInfoClampsLevel(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	player := createTestPlayer(t, db, user.ID, nil, "Rog")

	info, err := svc.SetPlayerInfo(player.ID, &services.PlayerInfoUpdate{Level: intPtr(25)})
	if err != nil {
		t.Fatalf("SetPlayerInfo failed: %v", err)
	}
	if info.Level != 20 {
		t.Errorf("Expected level capped at 20, got %d", info.Level)
	}

	info, err = svc.SetPlayerInfo(player.ID, &services.PlayerInfoUpdate{Level: intPtr(-3)})
	if err != nil {
		t.Fatalf("SetPlayerInfo failed: %v", err)
	}
	if info.Level != 1 {
		t.Errorf("Expected level floored at 1, got %d", info.Level)
	}
}

func TestSetPlayerInfoClampsAbilityScores(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	player := createTestPlayer(t, db, user.ID, nil, "Rog")

	info, err := svc.SetPlayerInfo(player.ID, &services.PlayerInfoUpdate{Strength: intPtr(45)})
	if err != nil {
		t.Fatalf("SetPlayerInfo failed: %v", err)
	}
	if info.Strength != 30 {
		t.Errorf("Expected strength capped at 30, got %d", info.Strength)
	}
	if info.Dexterity != 1 {
		t.Errorf("Expected untouched dexterity to stay at 1, got %d", info.Dexterity)
	}
}

func TestSetPlayerInfoAbsentFieldsUnchanged(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	player := createTestPlayer(t, db, user.ID, nil, "Rog")

	if _, err := svc.SetPlayerInfo(player.ID, &services.PlayerInfoUpdate{
		Level: intPtr(5),
		MaxHP: intPtr(42),
	}); err != nil {
		t.Fatalf("SetPlayerInfo failed: %v", err)
	}

	// An update that omits level and HP must leave both as they were.
	info, err := svc.SetPlayerInfo(player.ID, &services.PlayerInfoUpdate{Strength: intPtr(18)})
	if err != nil {
		t.Fatalf("SetPlayerInfo failed: %v", err)
	}
	if info.Level != 5 {
		t.Errorf("Expected level to stay at 5, got %d", info.Level)
	}
	if info.MaxHP != 42 {
		t.Errorf("Expected max HP to stay at 42, got %d", info.MaxHP)
	}
	if info.Strength != 18 {
		t.Errorf("Expected strength 18, got %d", info.Strength)
	}
}

func TestUpdateProficienciesPartialMerge(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	player := createTestPlayer(t, db, user.ID, nil, "Rog")

	if _, err := svc.UpdateProficiencies(player.ID, &services.ProficiencyUpdate{
		Stealth:    boolPtr(true),
		Perception: boolPtr(true),
	}); err != nil {
		t.Fatalf("UpdateProficiencies failed: %v", err)
	}

	prof, err := svc.UpdateProficiencies(player.ID, &services.ProficiencyUpdate{Arcana: boolPtr(true)})
	if err != nil {
		t.Fatalf("UpdateProficiencies failed: %v", err)
	}
	if !prof.Stealth || !prof.Perception {
		t.Errorf("Expected earlier proficiencies to survive a partial update, got %+v", prof)
	}
	if !prof.Arcana {
		t.Errorf("Expected arcana to be set, got %+v", prof)
	}
	if prof.Athletics || prof.Deception {
		t.Errorf("Expected unset proficiencies to stay false, got %+v", prof)
	}
}

func TestGetPlayersStripsBackstoryHTML(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	campaign := createTestCampaign(t, db, user.ID, "Lost Mines")
	player := createTestPlayer(t, db, user.ID, &campaign.ID, "Rog")
	player.Backstory = "<script>alert(1)</script>"
	if err := db.Save(player).Error; err != nil {
		t.Fatalf("Failed to save backstory: %v", err)
	}

	players, err := svc.GetPlayers(campaign.ID)
	if err != nil {
		t.Fatalf("GetPlayers failed: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("Expected 1 player, got %d", len(players))
	}
	if players[0].Backstory != "alert(1)" {
		t.Errorf("Expected tag markup stripped from backstory, got %q", players[0].Backstory)
	}

	// The stored value keeps its markup, only the read side strips.
	var stored models.Player
	if err := db.First(&stored, player.ID).Error; err != nil {
		t.Fatalf("Failed to reload player: %v", err)
	}
	if stored.Backstory != "<script>alert(1)</script>" {
		t.Errorf("Expected stored backstory untouched, got %q", stored.Backstory)
	}
}

func TestAddItemUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	player := createTestPlayer(t, db, user.ID, nil, "Rog")

	_, err := svc.AddItem(player.ID, 999, "2")
	wantKind(t, err, services.KindNotFound)

	var count int64
	db.Model(&models.PlayerEquipment{}).Where("player_id = ?", player.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected no equipment rows after a failed add, got %d", count)
	}
}

func TestAddItemAmountFallsBackToOne(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	player := createTestPlayer(t, db, user.ID, nil, "Rog")

	item := models.NewItem("Rope")
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}

	equipment, err := svc.AddItem(player.ID, item.ID, "lots")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if equipment.Amount != 1 {
		t.Errorf("Expected unparseable amount to default to 1, got %d", equipment.Amount)
	}

	equipment, err = svc.AddItem(player.ID, item.ID, "3")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if equipment.Amount != 3 {
		t.Errorf("Expected amount 3, got %d", equipment.Amount)
	}
}

func TestDeleteSpellWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	owner := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")
	player := createTestPlayer(t, db, owner.ID, nil, "Rog")

	spell := models.NewSpell("Fireball")
	spell.Description = "Boom."
	spell.SpellRange = "150 feet"
	spell.Components = "V, S, M"
	spell.Duration = "Instantaneous"
	spell.CastingTime = "1 action"
	spell.School = "Evocation"
	if err := db.Create(spell).Error; err != nil {
		t.Fatalf("Failed to create spell: %v", err)
	}

	if _, err := svc.AddSpell(player.ID, spell.ID); err != nil {
		t.Fatalf("AddSpell failed: %v", err)
	}

	err := svc.DeleteSpell(other.ID, player.ID, spell.ID)
	wantKind(t, err, services.KindForbidden)

	var count int64
	db.Model(&models.PlayerSpell{}).Where("player_id = ?", player.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected the spell link to survive a forbidden delete, got %d rows", count)
	}

	if err := svc.DeleteSpell(owner.ID, player.ID, spell.ID); err != nil {
		t.Fatalf("Owner delete failed: %v", err)
	}
	db.Model(&models.PlayerSpell{}).Where("player_id = ?", player.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected the spell link gone after owner delete, got %d rows", count)
	}
}

func TestAddSpellInvisibleFromOtherCampaign(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")
	home := createTestCampaign(t, db, user.ID, "Home")
	foreign := createTestCampaign(t, db, user.ID, "Foreign")
	player := createTestPlayer(t, db, user.ID, &home.ID, "Rog")

	spell := models.NewSpell("Homebrew Bolt")
	spell.CampaignID = &foreign.ID
	spell.Description = "Zap."
	spell.SpellRange = "30 feet"
	spell.Components = "V"
	spell.Duration = "Instantaneous"
	spell.CastingTime = "1 action"
	spell.School = "Evocation"
	if err := db.Create(spell).Error; err != nil {
		t.Fatalf("Failed to create spell: %v", err)
	}

	// Another campaign's homebrew spell is invisible to this player.
	_, err := svc.AddSpell(player.ID, spell.ID)
	wantKind(t, err, services.KindNotFound)
}

func TestCreatePlayerValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newPlayerService(db)

	user := createTestUser(t, db, "alice")

	_, err := svc.CreatePlayer(user.ID, "", "Human", "Fighter", "", nil)
	wantKind(t, err, services.KindValidation)

	_, err = svc.CreatePlayer(user.ID, "Rog", "Human", "Fighter", "", uintPtr(999))
	wantKind(t, err, services.KindNotFound)
}
