package models

import (
	"time"
)

// Spell holds all information about one spell. A nil CampaignID means the
// spell comes from the base game rather than a homebrew campaign.
type Spell struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	CampaignID *uint  `json:"playthrough_id"`
	Name       string `json:"name" gorm:"not null"`
	PhbPage    int    `json:"phb_page"`

	Description string `json:"description" gorm:"not null"`
	HigherLevel string `json:"higher_level"`
	Level       int    `json:"level"`

	SpellRange string `json:"spell_range" gorm:"not null"`

	Components string `json:"components" gorm:"not null"`
	Material   string `json:"material"`

	Ritual        bool `json:"ritual" gorm:"not null"`
	Concentration bool `json:"concentration" gorm:"not null"`

	Duration    string `json:"duration" gorm:"not null"`
	CastingTime string `json:"casting_time" gorm:"not null"`

	School string `json:"school" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Campaign *Campaign `json:"-"`
}

func NewSpell(name string) *Spell {
	return &Spell{Name: name}
}

// PlayerSpell links a player to a spell it knows.
type PlayerSpell struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	PlayerID uint `json:"player_id" gorm:"not null"`
	SpellID  uint `json:"spell_id" gorm:"not null"`

	Player Player `json:"-"`
	Spell  Spell  `json:"spell,omitempty"`
}

func NewPlayerSpell(playerID, spellID uint) *PlayerSpell {
	return &PlayerSpell{PlayerID: playerID, SpellID: spellID}
}
