package models

import (
	"time"
)

// Map is one node in a campaign's map tree. Maps with a nil parent are
// roots; children carry an x/y position on their parent.
type Map struct {
	ID          uint  `json:"id" gorm:"primaryKey"`
	CampaignID  uint  `json:"playthrough_id" gorm:"not null"`
	ParentMapID *uint `json:"parent_id"`

	MapURL string `json:"map_url" gorm:"not null"`
	X      int    `json:"x" gorm:"not null"`
	Y      int    `json:"y" gorm:"not null"`

	Name  string `json:"name" gorm:"not null"`
	Story string `json:"story"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Campaign  Campaign `json:"-"`
	ParentMap *Map     `json:"-"`
}

func NewMap(campaignID uint, mapURL string, x, y int, name string) *Map {
	return &Map{
		CampaignID: campaignID,
		MapURL:     mapURL,
		X:          x,
		Y:          y,
		Name:       name,
	}
}

// CreatedMap stores output from the map creation tool: the drawn image plus
// grid settings. Clipboard and undo states are not kept on the server.
type CreatedMap struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	CampaignID uint `json:"campaign_id" gorm:"not null"`

	MapBase64 string `json:"map_base64" gorm:"not null"`
	Name      string `json:"name" gorm:"not null"`
	GridSize  int    `json:"grid_size" gorm:"default:1"`
	GridType  string `json:"grid_type" gorm:"default:'none'"`

	CreatorID uint `json:"creator_id" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Campaign Campaign `json:"-"`
	Creator  User     `json:"-"`
}

func NewCreatedMap(campaignID uint, mapBase64, name string, creatorID uint) *CreatedMap {
	return &CreatedMap{
		CampaignID: campaignID,
		MapBase64:  mapBase64,
		Name:       name,
		GridSize:   1,
		GridType:   "none",
		CreatorID:  creatorID,
	}
}

// Battlemap is an opaque blob drawn in the encounter tool.
type Battlemap struct {
	ID         uint  `json:"id" gorm:"primaryKey"`
	CampaignID uint  `json:"playthrough_id" gorm:"not null"`
	CreatorID  *uint `json:"creator_id"`

	Name string `json:"name" gorm:"not null"`
	Data string `json:"data" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Campaign Campaign `json:"-"`
	Creator  *Player  `json:"-"`
}

func NewBattlemap(campaignID uint, creatorID *uint, name, data string) *Battlemap {
	return &Battlemap{
		CampaignID: campaignID,
		CreatorID:  creatorID,
		Name:       name,
		Data:       data,
	}
}
