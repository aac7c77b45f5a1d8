package models

import (
	"time"
)

// Player is a user-controlled character. CampaignID is nil while the
// character is not attached to any campaign.
type Player struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CampaignID *uint     `json:"playthrough_id"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	Name       string    `json:"name" gorm:"not null"`
	RaceName   string    `json:"race" gorm:"not null"`
	ClassName  string    `json:"class" gorm:"not null"`
	Backstory  string    `json:"backstory"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User     User      `json:"-"`
	Campaign *Campaign `json:"-"`
}

func NewPlayer(name string, campaignID *uint, userID uint) *Player {
	return &Player{
		Name:       name,
		CampaignID: campaignID,
		UserID:     userID,
	}
}

// PlayerInfo holds the static character sheet numbers for one player.
// Spells, items and weapons live in their own link tables.
type PlayerInfo struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	PlayerID uint `json:"player_id" gorm:"uniqueIndex;not null"`

	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`

	SavingThrowsStr bool `json:"saving_throws_str"`
	SavingThrowsDex bool `json:"saving_throws_dex"`
	SavingThrowsCon bool `json:"saving_throws_con"`
	SavingThrowsInt bool `json:"saving_throws_int"`
	SavingThrowsWis bool `json:"saving_throws_wis"`
	SavingThrowsCha bool `json:"saving_throws_cha"`

	MaxHP      int `json:"max_hp"`
	ArmorClass int `json:"armor_class"`
	Speed      int `json:"speed"`
	Level      int `json:"level"`

	Player Player `json:"-"`
}

// DefaultPlayerInfo is the baseline sheet materialized on first access.
func DefaultPlayerInfo(playerID uint) *PlayerInfo {
	return &PlayerInfo{
		PlayerID:     playerID,
		Strength:     1,
		Dexterity:    1,
		Constitution: 1,
		Intelligence: 1,
		Wisdom:       1,
		Charisma:     1,
		MaxHP:        10,
		ArmorClass:   10,
		Speed:        60,
		Level:        1,
	}
}

// PlayerProficiency holds the 18 skill proficiency flags for one player.
type PlayerProficiency struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	PlayerID uint `json:"player_id" gorm:"uniqueIndex;not null"`

	Acrobatics     bool `json:"acrobatics"`
	AnimalHandling bool `json:"animal_handling"`
	Arcana         bool `json:"arcana"`
	Athletics      bool `json:"athletics"`
	Deception      bool `json:"deception"`
	History        bool `json:"history"`
	Insight        bool `json:"insight"`
	Intimidation   bool `json:"intimidation"`
	Investigation  bool `json:"investigation"`
	Medicine       bool `json:"medicine"`
	Nature         bool `json:"nature"`
	Perception     bool `json:"perception"`
	Performance    bool `json:"performance"`
	Persuasion     bool `json:"persuasion"`
	Religion       bool `json:"religion"`
	SleightOfHand  bool `json:"sleight_of_hand"`
	Stealth        bool `json:"stealth"`
	Survival       bool `json:"survival"`

	Player Player `json:"-"`
}

func NewPlayerProficiency(playerID uint) *PlayerProficiency {
	return &PlayerProficiency{PlayerID: playerID}
}
