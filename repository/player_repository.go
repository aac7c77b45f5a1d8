package repository

import (
	"errors"

	"dmscreen/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EquippedItem is one row of a player's inventory: the equipment link, the
// item itself and its weapon extension when the item is a weapon.
type EquippedItem struct {
	Equipment models.PlayerEquipment `json:"equipment"`
	Item      models.Item            `json:"item"`
	Weapon    *models.Weapon         `json:"weapon,omitempty"`
}

type PlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) FindByID(id uint) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) FindByCampaign(campaignID uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("campaign_id = ?", campaignID).
		Preload("User").
		Find(&players).Error
	return players, err
}

func (r *PlayerRepository) FindByUser(userID uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("user_id = ?", userID).
		Preload("User").
		Find(&players).Error
	return players, err
}

func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

func (r *PlayerRepository) Save(player *models.Player) error {
	return r.db.Save(player).Error
}

func (r *PlayerRepository) Delete(player *models.Player) error {
	return r.db.Delete(player).Error
}

func (r *PlayerRepository) FindInfo(playerID uint) (*models.PlayerInfo, error) {
	var info models.PlayerInfo
	err := r.db.Where("player_id = ?", playerID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// CreateInfoIfAbsent inserts the row unless one already exists for the
// player. The unique index on player_id plus ON CONFLICT DO NOTHING keeps
// two concurrent first reads from materializing duplicate rows.
func (r *PlayerRepository) CreateInfoIfAbsent(info *models.PlayerInfo) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoNothing: true,
	}).Create(info).Error
}

func (r *PlayerRepository) SaveInfo(info *models.PlayerInfo) error {
	return r.db.Save(info).Error
}

func (r *PlayerRepository) FindProficiencies(playerID uint) (*models.PlayerProficiency, error) {
	var proficiencies models.PlayerProficiency
	err := r.db.Where("player_id = ?", playerID).First(&proficiencies).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &proficiencies, nil
}

func (r *PlayerRepository) CreateProficienciesIfAbsent(proficiencies *models.PlayerProficiency) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoNothing: true,
	}).Create(proficiencies).Error
}

func (r *PlayerRepository) SaveProficiencies(proficiencies *models.PlayerProficiency) error {
	return r.db.Save(proficiencies).Error
}

func (r *PlayerRepository) AddEquipment(equipment *models.PlayerEquipment) error {
	return r.db.Create(equipment).Error
}

func (r *PlayerRepository) FindEquipment(playerID, itemID uint) (*models.PlayerEquipment, error) {
	var equipment models.PlayerEquipment
	err := r.db.Where("player_id = ? AND item_id = ?", playerID, itemID).
		First(&equipment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *PlayerRepository) DeleteEquipment(equipment *models.PlayerEquipment) error {
	return r.db.Delete(equipment).Error
}

// FindEquippedItems returns a player's full inventory with weapon data
// joined onto weapon-category items.
func (r *PlayerRepository) FindEquippedItems(playerID uint) ([]EquippedItem, error) {
	var equipment []models.PlayerEquipment
	err := r.db.Where("player_id = ?", playerID).
		Preload("Item").
		Find(&equipment).Error
	if err != nil {
		return nil, err
	}

	items := make([]EquippedItem, 0, len(equipment))
	for _, eq := range equipment {
		row := EquippedItem{Equipment: eq, Item: eq.Item}
		if eq.Item.Category == models.CategoryWeapon {
			var weapon models.Weapon
			err := r.db.Where("item_id = ?", eq.ItemID).First(&weapon).Error
			if err == nil {
				row.Weapon = &weapon
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		items = append(items, row)
	}
	return items, nil
}

func (r *PlayerRepository) AddSpell(playerSpell *models.PlayerSpell) error {
	return r.db.Create(playerSpell).Error
}

func (r *PlayerRepository) FindPlayerSpell(playerID, spellID uint) (*models.PlayerSpell, error) {
	var playerSpell models.PlayerSpell
	err := r.db.Where("player_id = ? AND spell_id = ?", playerID, spellID).
		First(&playerSpell).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playerSpell, nil
}

func (r *PlayerRepository) DeletePlayerSpell(playerSpell *models.PlayerSpell) error {
	return r.db.Delete(playerSpell).Error
}

// FindSpells returns the spells a player knows.
func (r *PlayerRepository) FindSpells(playerID uint) ([]models.Spell, error) {
	var spells []models.Spell
	err := r.db.
		Joins("JOIN player_spells ON player_spells.spell_id = spells.id").
		Where("player_spells.player_id = ?", playerID).
		Find(&spells).Error
	return spells, err
}
