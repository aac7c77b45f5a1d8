package services

import (
	"strings"
	"time"

	"dmscreen/models"
	"dmscreen/repository"

	"github.com/google/uuid"
)

type CampaignService struct {
	campaigns *repository.CampaignRepository
	players   *repository.PlayerRepository
	host      string
}

func NewCampaignService(campaigns *repository.CampaignRepository, players *repository.PlayerRepository, host string) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		players:   players,
		host:      host,
	}
}

func (s *CampaignService) Create(userID uint, name string) (*models.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Validation("No playthrough name specified.")
	}

	campaign := models.NewCampaign(name, time.Now(), userID)
	if err := s.campaigns.Create(campaign); err != nil {
		return nil, Internal(err)
	}
	return campaign, nil
}

func (s *CampaignService) Get(campaignID uint) (*models.Campaign, error) {
	campaign, err := s.campaigns.FindByID(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	if campaign == nil {
		return nil, NotFound("This playthrough does not exist.")
	}
	return campaign, nil
}

func (s *CampaignService) GetOwned(userID uint) ([]models.Campaign, error) {
	campaigns, err := s.campaigns.FindByUser(userID)
	if err != nil {
		return nil, Internal(err)
	}
	return campaigns, nil
}

func (s *CampaignService) GetJoined(userID uint) ([]models.Campaign, error) {
	campaigns, err := s.campaigns.FindJoined(userID)
	if err != nil {
		return nil, Internal(err)
	}
	return campaigns, nil
}

func (s *CampaignService) Delete(userID, campaignID uint) error {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return err
	}
	if campaign.UserID != userID {
		return Forbidden("This is not your playthrough.")
	}
	if err := s.campaigns.Delete(campaign); err != nil {
		return Internal(err)
	}
	return nil
}

// JoinCode returns the campaign's active join code, issuing one on first
// request. Only the campaign owner may see it.
func (s *CampaignService) JoinCode(userID, campaignID uint) (*models.CampaignJoinCode, error) {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.UserID != userID {
		return nil, Forbidden("This is not your playthrough.")
	}

	code, err := s.campaigns.FindJoinCodeByCampaign(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	if code == nil {
		code = models.NewCampaignJoinCode(campaignID, uuid.NewString(), time.Now())
		if err := s.campaigns.SaveJoinCode(code); err != nil {
			return nil, Internal(err)
		}
	}
	return code, nil
}

// RotateJoinCode replaces the campaign's join code, invalidating the old
// one.
func (s *CampaignService) RotateJoinCode(userID, campaignID uint) (*models.CampaignJoinCode, error) {
	code, err := s.JoinCode(userID, campaignID)
	if err != nil {
		return nil, err
	}

	code.Code = uuid.NewString()
	code.Date = time.Now()
	if err := s.campaigns.SaveJoinCode(code); err != nil {
		return nil, Internal(err)
	}
	return code, nil
}

func (s *CampaignService) JoinURL(code *models.CampaignJoinCode) string {
	return code.ToURL(s.host)
}

func (s *CampaignService) ResolveCode(code string) (*models.Campaign, error) {
	joinCode, err := s.campaigns.FindJoinCode(code)
	if err != nil {
		return nil, Internal(err)
	}
	if joinCode == nil {
		return nil, NotFound("This playthrough does not exist.")
	}
	return s.Get(joinCode.CampaignID)
}

// Join attaches one of the caller's player characters to the campaign
// behind a join code.
func (s *CampaignService) Join(userID uint, code string, playerID uint) (*models.Campaign, error) {
	campaign, err := s.ResolveCode(code)
	if err != nil {
		return nil, err
	}

	player, err := s.players.FindByID(playerID)
	if err != nil {
		return nil, Internal(err)
	}
	if player == nil {
		return nil, NotFound("This player does not exist.")
	}
	if player.UserID != userID {
		return nil, Forbidden("This player does not belong to you.")
	}

	player.CampaignID = &campaign.ID
	if err := s.players.Save(player); err != nil {
		return nil, Internal(err)
	}
	return campaign, nil
}

// UserInCampaign reports whether the user owns the campaign or has a
// player character in it.
func (s *CampaignService) UserInCampaign(userID uint, campaign *models.Campaign) (bool, error) {
	if campaign.UserID == userID {
		return true, nil
	}
	players, err := s.players.FindByCampaign(campaign.ID)
	if err != nil {
		return false, Internal(err)
	}
	for _, player := range players {
		if player.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

// RequireMember returns the campaign if the user owns it or plays in it.
func (s *CampaignService) RequireMember(userID, campaignID uint) (*models.Campaign, error) {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return nil, err
	}
	member, err := s.UserInCampaign(userID, campaign)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, Forbidden("This is not your playthrough.")
	}
	return campaign, nil
}
