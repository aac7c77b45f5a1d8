package models

import (
	"time"
)

// Enemy is a combatant template owned by a user, reusable across encounters.
type Enemy struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null"`

	Name       string `json:"name" gorm:"not null"`
	MaxHP      int    `json:"hp" gorm:"not null"`
	ArmorClass int    `json:"ac" gorm:"not null"`

	Strength     *int `json:"str"`
	Dexterity    *int `json:"dex"`
	Constitution *int `json:"con"`
	Intelligence *int `json:"int"`
	Wisdom       *int `json:"wis"`
	Charisma     *int `json:"cha"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-"`
}

func NewEnemy(name string, maxHP, armorClass int, userID uint) *Enemy {
	return &Enemy{
		Name:       name,
		MaxHP:      maxHP,
		ArmorClass: armorClass,
		UserID:     userID,
	}
}

// EnemyAbility is one free-text ability block attached to an enemy.
type EnemyAbility struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	EnemyID uint   `json:"enemy_id" gorm:"not null"`
	Text    string `json:"text" gorm:"not null"`

	Enemy Enemy `json:"-"`
}

func NewEnemyAbility(enemyID uint, text string) *EnemyAbility {
	return &EnemyAbility{EnemyID: enemyID, Text: text}
}
