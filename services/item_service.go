package services

import (
	"dmscreen/models"
	"dmscreen/repository"
)

type ItemService struct {
	items     *repository.ItemRepository
	campaigns *CampaignService
}

func NewItemService(items *repository.ItemRepository, campaigns *CampaignService) *ItemService {
	return &ItemService{
		items:     items,
		campaigns: campaigns,
	}
}

// ItemWithWeapon pairs an item with its weapon extension when present.
type ItemWithWeapon struct {
	Item   models.Item    `json:"item"`
	Weapon *models.Weapon `json:"weapon,omitempty"`
}

// WeaponFields are the optional weapon attributes supplied when creating a
// weapon-category item.
type WeaponFields struct {
	Dice             int    `json:"dice"`
	DamageBonus      int    `json:"damage_bonus"`
	DamageType       string `json:"damage_type"`
	TwoDice          int    `json:"two_dice"`
	TwoDamageBonus   int    `json:"two_damage_bonus"`
	TwoDamageType    string `json:"two_damage_type"`
	RangeNormal      int    `json:"range_normal"`
	RangeLong        int    `json:"range_long"`
	ThrowRangeNormal int    `json:"throw_range_normal"`
	ThrowRangeLong   int    `json:"throw_range_long"`
}

// GetItems lists the items visible from a campaign: the base game set plus
// the campaign's own. Caller must be a campaign member.
func (s *ItemService) GetItems(userID, campaignID uint) ([]models.Item, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	items, err := s.items.FindVisible(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	return items, nil
}

func (s *ItemService) GetItem(itemID uint) (*ItemWithWeapon, error) {
	item, err := s.items.FindByID(itemID)
	if err != nil {
		return nil, Internal(err)
	}
	if item == nil {
		return nil, NotFound("This item does not exist.")
	}

	result := &ItemWithWeapon{Item: *item}
	if item.Category == models.CategoryWeapon {
		weapon, err := s.items.FindWeaponByItem(item.ID)
		if err != nil {
			return nil, Internal(err)
		}
		result.Weapon = weapon
	}
	return result, nil
}

// CreateItem adds a homebrew item to a campaign. Only the campaign owner
// may do this. Weapon-category items get a weapon row from the provided
// fields.
func (s *ItemService) CreateItem(userID, campaignID uint, name, category string, cost, weight int, weapon *WeaponFields) (*ItemWithWeapon, error) {
	campaign, err := s.campaigns.Get(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != userID {
		return nil, Forbidden("This is not your playthrough.")
	}
	if name == "" {
		return nil, Validation("No item name specified.")
	}
	if category != models.CategoryWeapon && category != models.CategoryItem {
		return nil, Validation("Unknown item category.")
	}

	item := models.NewItem(name)
	item.CampaignID = &campaignID
	item.Category = category
	item.Cost = cost
	item.Weight = weight
	if err := s.items.Create(item); err != nil {
		return nil, Internal(err)
	}

	result := &ItemWithWeapon{Item: *item}
	if category == models.CategoryWeapon {
		w := models.NewWeapon(item.ID)
		if weapon != nil {
			w.Dice = weapon.Dice
			w.DamageBonus = weapon.DamageBonus
			w.DamageType = weapon.DamageType
			w.TwoDice = weapon.TwoDice
			w.TwoDamageBonus = weapon.TwoDamageBonus
			w.TwoDamageType = weapon.TwoDamageType
			w.RangeNormal = weapon.RangeNormal
			w.RangeLong = weapon.RangeLong
			w.ThrowRangeNormal = weapon.ThrowRangeNormal
			w.ThrowRangeLong = weapon.ThrowRangeLong
		}
		if err := s.items.CreateWeapon(w); err != nil {
			return nil, Internal(err)
		}
		result.Weapon = w
	}
	return result, nil
}

// DeleteItem removes a campaign item. Base game items cannot be deleted.
func (s *ItemService) DeleteItem(userID, itemID uint) error {
	item, err := s.items.FindByID(itemID)
	if err != nil {
		return Internal(err)
	}
	if item == nil {
		return NotFound("This item does not exist.")
	}
	if item.CampaignID == nil {
		return Forbidden("Base game items cannot be deleted.")
	}

	campaign, err := s.campaigns.Get(*item.CampaignID)
	if err != nil {
		return err
	}
	if campaign.UserID != userID {
		return Forbidden("This is not your playthrough.")
	}

	if err := s.items.Delete(item); err != nil {
		return Internal(err)
	}
	return nil
}
