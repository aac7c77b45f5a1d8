package services

import (
	"time"

	"dmscreen/models"
	"dmscreen/repository"
)

type LogService struct {
	logs      *repository.LogRepository
	players   *repository.PlayerRepository
	campaigns *CampaignService
}

func NewLogService(logs *repository.LogRepository, players *repository.PlayerRepository,
	campaigns *CampaignService) *LogService {
	return &LogService{
		logs:      logs,
		players:   players,
		campaigns: campaigns,
	}
}

func (s *LogService) GetLogs(userID, campaignID uint) ([]models.Log, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	logs, err := s.logs.FindByCampaign(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	return logs, nil
}

// CreateLog writes a session log entry, stamped with the current time and
// the caller's player in the campaign when one exists.
func (s *LogService) CreateLog(userID, campaignID uint, title, text string) (*models.Log, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, Validation("No log title specified.")
	}
	if text == "" {
		return nil, Validation("No log text specified.")
	}

	var creatorID *uint
	players, err := s.players.FindByCampaign(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	for _, player := range players {
		if player.UserID == userID {
			id := player.ID
			creatorID = &id
			break
		}
	}

	logEntry := models.NewLog(campaignID, creatorID, title, text, time.Now())
	if err := s.logs.Create(logEntry); err != nil {
		return nil, Internal(err)
	}
	return logEntry, nil
}

// DeleteLog removes a log entry. Allowed for the campaign owner and for
// the user whose player wrote it.
func (s *LogService) DeleteLog(userID, logID uint) error {
	logEntry, err := s.logs.FindByID(logID)
	if err != nil {
		return Internal(err)
	}
	if logEntry == nil {
		return NotFound("This log does not exist.")
	}

	campaign, err := s.campaigns.Get(logEntry.CampaignID)
	if err != nil {
		return err
	}

	allowed := campaign.UserID == userID
	if !allowed && logEntry.CreatorID != nil {
		creator, err := s.players.FindByID(*logEntry.CreatorID)
		if err != nil {
			return Internal(err)
		}
		allowed = creator != nil && creator.UserID == userID
	}
	if !allowed {
		return Forbidden("This log does not belong to you.")
	}

	if err := s.logs.Delete(logEntry); err != nil {
		return Internal(err)
	}
	return nil
}
