package models

import (
	"time"
)

// Item categories.
const (
	CategoryWeapon = "weapon"
	CategoryItem   = "item"
)

// Item is a piece of equipment. A nil CampaignID means the item belongs to
// the base game rather than one campaign. Cost is in copper pieces; 100+ is
// silver, 10000+ is gold.
type Item struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	CampaignID *uint     `json:"playthrough_id"`
	Category   string    `json:"category" gorm:"not null"`
	Cost       int       `json:"cost" gorm:"not null"`
	Weight     int       `json:"weight"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Campaign *Campaign `json:"-"`
}

func NewItem(name string) *Item {
	return &Item{Name: name, Category: CategoryItem}
}

// Weapon extends an Item with damage and range data.
type Weapon struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	ItemID uint `json:"item_id" gorm:"uniqueIndex;not null"`

	Dice        int    `json:"dice"`
	DamageBonus int    `json:"damage_bonus"`
	DamageType  string `json:"damage_type"`

	// Two handed information
	TwoDice        int    `json:"two_dice"`
	TwoDamageBonus int    `json:"two_damage_bonus"`
	TwoDamageType  string `json:"two_damage_type"`

	RangeNormal int `json:"range_normal"`
	RangeLong   int `json:"range_long"`

	ThrowRangeNormal int `json:"throw_range_normal"`
	ThrowRangeLong   int `json:"throw_range_long"`

	Item Item `json:"-"`
}

func NewWeapon(itemID uint) *Weapon {
	return &Weapon{ItemID: itemID}
}

// PlayerEquipment links a player to an item with an amount.
type PlayerEquipment struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	PlayerID  uint   `json:"player_id" gorm:"not null"`
	ItemID    uint   `json:"item_id" gorm:"not null"`
	Amount    int    `json:"amount" gorm:"not null;default:0"`
	ExtraInfo string `json:"extra_info"`

	Player Player `json:"-"`
	Item   Item   `json:"item,omitempty"`
}

func NewPlayerEquipment(playerID, itemID uint) *PlayerEquipment {
	return &PlayerEquipment{PlayerID: playerID, ItemID: itemID}
}
