package models

import (
	"fmt"
	"time"
)

// Campaign is a single playthrough: one ongoing game with its own players,
// maps, items, spells and history.
type Campaign struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    User     `json:"-"`
	Players []Player `json:"players,omitempty" gorm:"foreignKey:CampaignID"`
}

func NewCampaign(name string, date time.Time, userID uint) *Campaign {
	return &Campaign{
		Name:   name,
		Date:   date,
		UserID: userID,
	}
}

// CampaignJoinCode is a shareable token allowing a user to attach a player
// character to a campaign. One active code per campaign.
type CampaignJoinCode struct {
	CampaignID uint      `json:"playthrough_id" gorm:"primaryKey"`
	Code       string    `json:"code" gorm:"uniqueIndex;not null"`
	Date       time.Time `json:"date" gorm:"not null"`

	Campaign Campaign `json:"-"`
}

func NewCampaignJoinCode(campaignID uint, code string, date time.Time) *CampaignJoinCode {
	return &CampaignJoinCode{
		CampaignID: campaignID,
		Code:       code,
		Date:       date,
	}
}

func (c *CampaignJoinCode) ToURL(host string) string {
	return fmt.Sprintf("%s/join/%s", host, c.Code)
}
