package services

import (
	"time"

	"dmscreen/models"
	"dmscreen/repository"
)

type MessageService struct {
	messages  *repository.MessageRepository
	campaigns *repository.CampaignRepository
	players   *repository.PlayerRepository
	hub       *Hub
}

func NewMessageService(messages *repository.MessageRepository, campaigns *repository.CampaignRepository,
	players *repository.PlayerRepository) *MessageService {
	return &MessageService{
		messages:  messages,
		campaigns: campaigns,
		players:   players,
	}
}

// SetHub attaches the chat hub once it exists; messages then fan out to
// connected campaign clients on creation.
func (s *MessageService) SetHub(hub *Hub) {
	s.hub = hub
}

// GetMessages returns a campaign's full message history. The campaign must
// exist and be owned by the caller; failures never return partial data.
func (s *MessageService) GetMessages(campaignID, userID uint) ([]models.Message, error) {
	campaign, err := s.campaigns.FindByID(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	if campaign == nil {
		return nil, NotFound("This playthrough does not exist.")
	}
	if campaign.UserID != userID {
		return nil, Forbidden("This is not your playthrough.")
	}

	messages, err := s.messages.FindByCampaign(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	return messages, nil
}

// CreateMessage resolves a campaign from its join code, stamps the message
// with the current time and the sender's player in that campaign, and
// persists it.
func (s *MessageService) CreateMessage(joinCode string, userID uint, text string) (*models.Message, error) {
	code, err := s.campaigns.FindJoinCode(joinCode)
	if err != nil {
		return nil, Internal(err)
	}
	if code == nil {
		return nil, NotFound("This playthrough does not exist.")
	}

	var senderID *uint
	players, err := s.players.FindByCampaign(code.CampaignID)
	if err != nil {
		return nil, Internal(err)
	}
	for _, player := range players {
		if player.UserID == userID {
			id := player.ID
			senderID = &id
			break
		}
	}

	message := models.NewMessage(code.CampaignID, senderID, text, time.Now())
	if err := s.messages.Create(message); err != nil {
		return nil, Internal(err)
	}

	if s.hub != nil {
		s.hub.BroadcastToCampaign(code.CampaignID, "message", message)
	}
	return message, nil
}
