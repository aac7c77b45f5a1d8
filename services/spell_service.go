package services

import (
	"dmscreen/models"
	"dmscreen/repository"
)

type SpellService struct {
	spells    *repository.SpellRepository
	campaigns *CampaignService
}

func NewSpellService(spells *repository.SpellRepository, campaigns *CampaignService) *SpellService {
	return &SpellService{
		spells:    spells,
		campaigns: campaigns,
	}
}

// SpellFields are the attributes supplied when creating a homebrew spell.
type SpellFields struct {
	Name          string `json:"name" binding:"required"`
	PhbPage       int    `json:"phb_page"`
	Description   string `json:"description" binding:"required"`
	HigherLevel   string `json:"higher_level"`
	Level         int    `json:"level"`
	SpellRange    string `json:"spell_range" binding:"required"`
	Components    string `json:"components" binding:"required"`
	Material      string `json:"material"`
	Ritual        bool   `json:"ritual"`
	Concentration bool   `json:"concentration"`
	Duration      string `json:"duration" binding:"required"`
	CastingTime   string `json:"casting_time" binding:"required"`
	School        string `json:"school" binding:"required"`
}

// GetSpells lists the spells visible from a campaign: base game plus the
// campaign's own. Caller must be a campaign member.
func (s *SpellService) GetSpells(userID, campaignID uint) ([]models.Spell, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	spells, err := s.spells.FindVisible(&campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	return spells, nil
}

func (s *SpellService) GetSpell(spellID uint) (*models.Spell, error) {
	spell, err := s.spells.FindByID(spellID)
	if err != nil {
		return nil, Internal(err)
	}
	if spell == nil {
		return nil, NotFound("This spell does not exist.")
	}
	return spell, nil
}

// CreateSpell adds a homebrew spell to a campaign. Owner only.
func (s *SpellService) CreateSpell(userID, campaignID uint, fields *SpellFields) (*models.Spell, error) {
	campaign, err := s.campaigns.Get(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != userID {
		return nil, Forbidden("This is not your playthrough.")
	}

	spell := models.NewSpell(fields.Name)
	spell.CampaignID = &campaignID
	spell.PhbPage = fields.PhbPage
	spell.Description = fields.Description
	spell.HigherLevel = fields.HigherLevel
	spell.Level = fields.Level
	spell.SpellRange = fields.SpellRange
	spell.Components = fields.Components
	spell.Material = fields.Material
	spell.Ritual = fields.Ritual
	spell.Concentration = fields.Concentration
	spell.Duration = fields.Duration
	spell.CastingTime = fields.CastingTime
	spell.School = fields.School

	if err := s.spells.Create(spell); err != nil {
		return nil, Internal(err)
	}
	return spell, nil
}

// DeleteSpell removes a homebrew spell. Base game spells cannot be
// deleted.
func (s *SpellService) DeleteSpell(userID, spellID uint) error {
	spell, err := s.GetSpell(spellID)
	if err != nil {
		return err
	}
	if spell.CampaignID == nil {
		return Forbidden("Base game spells cannot be deleted.")
	}

	campaign, err := s.campaigns.Get(*spell.CampaignID)
	if err != nil {
		return err
	}
	if campaign.UserID != userID {
		return Forbidden("This is not your playthrough.")
	}

	if err := s.spells.Delete(spell); err != nil {
		return Internal(err)
	}
	return nil
}
