package services

import (
	"regexp"
	"strconv"

	"dmscreen/models"
	"dmscreen/repository"
)

// Ability scores cap at 30, levels run 1 through 20.
const (
	maxAbilityScore = 30
	minLevel        = 1
	maxLevel        = 20
)

var htmlTagPattern = regexp.MustCompile(`<.*?>`)

// baseClasses is the fixed class list served to character builders.
var baseClasses = []string{
	"Barbarian", "Bard", "Cleric", "Druid", "Fighter", "Monk",
	"Paladin", "Ranger", "Rogue", "Sorcerer", "Warlock", "Wizard",
}

type PlayerService struct {
	players   *repository.PlayerRepository
	items     *repository.ItemRepository
	spells    *repository.SpellRepository
	campaigns *repository.CampaignRepository
}

func NewPlayerService(players *repository.PlayerRepository, items *repository.ItemRepository,
	spells *repository.SpellRepository, campaigns *repository.CampaignRepository) *PlayerService {
	return &PlayerService{
		players:   players,
		items:     items,
		spells:    spells,
		campaigns: campaigns,
	}
}

// PlayerInfoUpdate carries a partial character sheet. Nil fields were not
// present in the request and leave the stored value untouched.
type PlayerInfoUpdate struct {
	Strength     *int `json:"strength"`
	Dexterity    *int `json:"dexterity"`
	Constitution *int `json:"constitution"`
	Intelligence *int `json:"intelligence"`
	Wisdom       *int `json:"wisdom"`
	Charisma     *int `json:"charisma"`

	SavingThrowsStr *bool `json:"saving_throws_str"`
	SavingThrowsDex *bool `json:"saving_throws_dex"`
	SavingThrowsCon *bool `json:"saving_throws_con"`
	SavingThrowsInt *bool `json:"saving_throws_int"`
	SavingThrowsWis *bool `json:"saving_throws_wis"`
	SavingThrowsCha *bool `json:"saving_throws_cha"`

	MaxHP      *int `json:"max_hp"`
	ArmorClass *int `json:"armor_class"`
	Speed      *int `json:"speed"`
	Level      *int `json:"level"`
}

// ProficiencyUpdate carries a partial skill set, merged field by field.
type ProficiencyUpdate struct {
	Acrobatics     *bool `json:"acrobatics"`
	AnimalHandling *bool `json:"animal_handling"`
	Arcana         *bool `json:"arcana"`
	Athletics      *bool `json:"athletics"`
	Deception      *bool `json:"deception"`
	History        *bool `json:"history"`
	Insight        *bool `json:"insight"`
	Intimidation   *bool `json:"intimidation"`
	Investigation  *bool `json:"investigation"`
	Medicine       *bool `json:"medicine"`
	Nature         *bool `json:"nature"`
	Perception     *bool `json:"perception"`
	Performance    *bool `json:"performance"`
	Persuasion     *bool `json:"persuasion"`
	Religion       *bool `json:"religion"`
	SleightOfHand  *bool `json:"sleight_of_hand"`
	Stealth        *bool `json:"stealth"`
	Survival       *bool `json:"survival"`
}

func stripHTML(data string) string {
	return htmlTagPattern.ReplaceAllString(data, "")
}

func (s *PlayerService) CreatePlayer(userID uint, name, race, class, backstory string, campaignID *uint) (*models.Player, error) {
	if name == "" {
		return nil, Validation("No player name specified.")
	}

	if campaignID != nil {
		campaign, err := s.campaigns.FindByID(*campaignID)
		if err != nil {
			return nil, Internal(err)
		}
		if campaign == nil {
			return nil, NotFound("This playthrough does not exist.")
		}
	}

	player := models.NewPlayer(name, campaignID, userID)
	player.RaceName = race
	player.ClassName = class
	player.Backstory = backstory

	if err := s.players.Create(player); err != nil {
		return nil, Internal(err)
	}
	return player, nil
}

// GetPlayers returns all players in a campaign. Backstories are never
// trusted as HTML and are stripped of tag markup on the way out.
func (s *PlayerService) GetPlayers(campaignID uint) ([]models.Player, error) {
	campaign, err := s.campaigns.FindByID(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	if campaign == nil {
		return nil, NotFound("This playthrough does not exist.")
	}

	players, err := s.players.FindByCampaign(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	for i := range players {
		players[i].Backstory = stripHTML(players[i].Backstory)
	}
	return players, nil
}

func (s *PlayerService) GetUserPlayers(userID uint) ([]models.Player, error) {
	players, err := s.players.FindByUser(userID)
	if err != nil {
		return nil, Internal(err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(playerID uint) (*models.Player, error) {
	player, err := s.players.FindByID(playerID)
	if err != nil {
		return nil, Internal(err)
	}
	if player == nil {
		return nil, NotFound("This player does not exist.")
	}
	return player, nil
}

// requireOwnedPlayer loads a player and checks the caller owns it.
func (s *PlayerService) requireOwnedPlayer(userID, playerID uint) (*models.Player, error) {
	player, err := s.GetPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if player.UserID != userID {
		return nil, Forbidden("This player does not belong to you.")
	}
	return player, nil
}

func (s *PlayerService) UpdatePlayer(userID, playerID uint, name, race, class, backstory string) (*models.Player, error) {
	player, err := s.requireOwnedPlayer(userID, playerID)
	if err != nil {
		return nil, err
	}

	player.Name = name
	player.RaceName = race
	player.ClassName = class
	player.Backstory = backstory

	if err := s.players.Save(player); err != nil {
		return nil, Internal(err)
	}
	return player, nil
}

func (s *PlayerService) DeletePlayer(userID, playerID uint) error {
	player, err := s.requireOwnedPlayer(userID, playerID)
	if err != nil {
		return err
	}
	if err := s.players.Delete(player); err != nil {
		return Internal(err)
	}
	return nil
}

// GetPlayerInfo returns the player's character sheet, materializing the
// default baseline on first access. Safe to call twice: the insert is
// guarded by the unique index on player_id.
func (s *PlayerService) GetPlayerInfo(playerID uint) (*models.PlayerInfo, error) {
	if _, err := s.GetPlayer(playerID); err != nil {
		return nil, err
	}

	info, err := s.players.FindInfo(playerID)
	if err != nil {
		return nil, Internal(err)
	}
	if info == nil {
		if err := s.players.CreateInfoIfAbsent(models.DefaultPlayerInfo(playerID)); err != nil {
			return nil, Internal(err)
		}
		info, err = s.players.FindInfo(playerID)
		if err != nil {
			return nil, Internal(err)
		}
	}
	return info, nil
}

// SetPlayerInfo merges the provided fields into the player's sheet.
// Ability scores clamp to the ceiling after the merge; level clamps into
// its valid range.
func (s *PlayerService) SetPlayerInfo(playerID uint, update *PlayerInfoUpdate) (*models.PlayerInfo, error) {
	info, err := s.GetPlayerInfo(playerID)
	if err != nil {
		return nil, err
	}

	mergeInt(&info.Strength, update.Strength)
	mergeInt(&info.Dexterity, update.Dexterity)
	mergeInt(&info.Constitution, update.Constitution)
	mergeInt(&info.Intelligence, update.Intelligence)
	mergeInt(&info.Wisdom, update.Wisdom)
	mergeInt(&info.Charisma, update.Charisma)

	info.Strength = min(info.Strength, maxAbilityScore)
	info.Dexterity = min(info.Dexterity, maxAbilityScore)
	info.Constitution = min(info.Constitution, maxAbilityScore)
	info.Intelligence = min(info.Intelligence, maxAbilityScore)
	info.Wisdom = min(info.Wisdom, maxAbilityScore)
	info.Charisma = min(info.Charisma, maxAbilityScore)

	mergeBool(&info.SavingThrowsStr, update.SavingThrowsStr)
	mergeBool(&info.SavingThrowsDex, update.SavingThrowsDex)
	mergeBool(&info.SavingThrowsCon, update.SavingThrowsCon)
	mergeBool(&info.SavingThrowsInt, update.SavingThrowsInt)
	mergeBool(&info.SavingThrowsWis, update.SavingThrowsWis)
	mergeBool(&info.SavingThrowsCha, update.SavingThrowsCha)

	mergeInt(&info.MaxHP, update.MaxHP)
	mergeInt(&info.ArmorClass, update.ArmorClass)
	mergeInt(&info.Speed, update.Speed)
	mergeInt(&info.Level, update.Level)
	info.Level = max(min(info.Level, maxLevel), minLevel)

	if err := s.players.SaveInfo(info); err != nil {
		return nil, Internal(err)
	}
	return info, nil
}

// GetPlayerProficiencies follows the same lazy creation pattern as
// GetPlayerInfo, defaulting every skill to false.
func (s *PlayerService) GetPlayerProficiencies(playerID uint) (*models.PlayerProficiency, error) {
	if _, err := s.GetPlayer(playerID); err != nil {
		return nil, err
	}

	proficiencies, err := s.players.FindProficiencies(playerID)
	if err != nil {
		return nil, Internal(err)
	}
	if proficiencies == nil {
		if err := s.players.CreateProficienciesIfAbsent(models.NewPlayerProficiency(playerID)); err != nil {
			return nil, Internal(err)
		}
		proficiencies, err = s.players.FindProficiencies(playerID)
		if err != nil {
			return nil, Internal(err)
		}
	}
	return proficiencies, nil
}

func (s *PlayerService) UpdateProficiencies(playerID uint, update *ProficiencyUpdate) (*models.PlayerProficiency, error) {
	proficiencies, err := s.GetPlayerProficiencies(playerID)
	if err != nil {
		return nil, err
	}

	mergeBool(&proficiencies.Acrobatics, update.Acrobatics)
	mergeBool(&proficiencies.AnimalHandling, update.AnimalHandling)
	mergeBool(&proficiencies.Arcana, update.Arcana)
	mergeBool(&proficiencies.Athletics, update.Athletics)
	mergeBool(&proficiencies.Deception, update.Deception)
	mergeBool(&proficiencies.History, update.History)
	mergeBool(&proficiencies.Insight, update.Insight)
	mergeBool(&proficiencies.Intimidation, update.Intimidation)
	mergeBool(&proficiencies.Investigation, update.Investigation)
	mergeBool(&proficiencies.Medicine, update.Medicine)
	mergeBool(&proficiencies.Nature, update.Nature)
	mergeBool(&proficiencies.Perception, update.Perception)
	mergeBool(&proficiencies.Performance, update.Performance)
	mergeBool(&proficiencies.Persuasion, update.Persuasion)
	mergeBool(&proficiencies.Religion, update.Religion)
	mergeBool(&proficiencies.SleightOfHand, update.SleightOfHand)
	mergeBool(&proficiencies.Stealth, update.Stealth)
	mergeBool(&proficiencies.Survival, update.Survival)

	if err := s.players.SaveProficiencies(proficiencies); err != nil {
		return nil, Internal(err)
	}
	return proficiencies, nil
}

// AddItem puts an item into the player's inventory. An amount that does
// not parse as an integer defaults to 1.
func (s *PlayerService) AddItem(playerID, itemID uint, amount string) (*models.PlayerEquipment, error) {
	if _, err := s.GetPlayer(playerID); err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(itemID)
	if err != nil {
		return nil, Internal(err)
	}
	if item == nil {
		return nil, NotFound("This item does not exist.")
	}

	count, err := strconv.Atoi(amount)
	if err != nil {
		count = 1
	}

	equipment := models.NewPlayerEquipment(playerID, itemID)
	equipment.Amount = count
	if err := s.players.AddEquipment(equipment); err != nil {
		return nil, Internal(err)
	}
	return equipment, nil
}

func (s *PlayerService) DeleteItem(userID, playerID, itemID uint) error {
	player, err := s.requireOwnedPlayer(userID, playerID)
	if err != nil {
		return err
	}

	equipment, err := s.players.FindEquipment(player.ID, itemID)
	if err != nil {
		return Internal(err)
	}
	if equipment == nil {
		return NotFound("This item does not exist.")
	}
	if err := s.players.DeleteEquipment(equipment); err != nil {
		return Internal(err)
	}
	return nil
}

func (s *PlayerService) GetPlayerItems(playerID uint) ([]repository.EquippedItem, error) {
	if _, err := s.GetPlayer(playerID); err != nil {
		return nil, err
	}
	items, err := s.players.FindEquippedItems(playerID)
	if err != nil {
		return nil, Internal(err)
	}
	return items, nil
}

// AddSpell teaches the player a spell visible from its campaign: a base
// game spell or one of the campaign's own.
func (s *PlayerService) AddSpell(playerID, spellID uint) (*models.PlayerSpell, error) {
	player, err := s.GetPlayer(playerID)
	if err != nil {
		return nil, err
	}

	spell, err := s.spells.FindByID(spellID)
	if err != nil {
		return nil, Internal(err)
	}
	if spell == nil || !spellVisibleTo(spell, player) {
		return nil, NotFound("This spell does not exist.")
	}

	playerSpell := models.NewPlayerSpell(playerID, spellID)
	if err := s.players.AddSpell(playerSpell); err != nil {
		return nil, Internal(err)
	}
	return playerSpell, nil
}

func (s *PlayerService) DeleteSpell(userID, playerID, spellID uint) error {
	player, err := s.requireOwnedPlayer(userID, playerID)
	if err != nil {
		return err
	}

	playerSpell, err := s.players.FindPlayerSpell(player.ID, spellID)
	if err != nil {
		return Internal(err)
	}
	if playerSpell == nil {
		return NotFound("This spell does not exist.")
	}
	if err := s.players.DeletePlayerSpell(playerSpell); err != nil {
		return Internal(err)
	}
	return nil
}

func (s *PlayerService) GetPlayerSpells(playerID uint) ([]models.Spell, error) {
	if _, err := s.GetPlayer(playerID); err != nil {
		return nil, err
	}
	spells, err := s.players.FindSpells(playerID)
	if err != nil {
		return nil, Internal(err)
	}
	return spells, nil
}

func (s *PlayerService) Classes() []string {
	return baseClasses
}

func spellVisibleTo(spell *models.Spell, player *models.Player) bool {
	if spell.CampaignID == nil {
		return true
	}
	return player.CampaignID != nil && *spell.CampaignID == *player.CampaignID
}

func mergeInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func mergeBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
