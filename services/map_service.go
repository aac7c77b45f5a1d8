package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dmscreen/models"
	"dmscreen/repository"

	"github.com/google/uuid"
)

type MapService struct {
	maps      *repository.MapRepository
	players   *repository.PlayerRepository
	campaigns *CampaignService
	uploadDir string
}

func NewMapService(maps *repository.MapRepository, players *repository.PlayerRepository,
	campaigns *CampaignService, uploadDir string) *MapService {
	return &MapService{
		maps:      maps,
		players:   players,
		campaigns: campaigns,
		uploadDir: uploadDir,
	}
}

// MapNode is a map row together with its direct children.
type MapNode struct {
	Map      models.Map   `json:"map"`
	Children []models.Map `json:"children"`
}

// CreateMap stores an uploaded map image and inserts the map node under an
// optional parent. The parent must belong to the same campaign, and a map
// may never become its own ancestor.
func (s *MapService) CreateMap(userID, campaignID uint, name, fileName string, file io.Reader,
	x, y int, parentID *uint) (*models.Map, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, Validation("No map name specified.")
	}

	if parentID != nil {
		parent, err := s.maps.FindByID(*parentID)
		if err != nil {
			return nil, Internal(err)
		}
		if parent == nil || parent.CampaignID != campaignID {
			return nil, NotFound("This map does not exist.")
		}
	}

	url, err := s.storeFile(fileName, file)
	if err != nil {
		return nil, Internal(err)
	}

	m := models.NewMap(campaignID, url, x, y, name)
	m.ParentMapID = parentID
	if err := s.maps.Create(m); err != nil {
		return nil, Internal(err)
	}
	return m, nil
}

// GetMap returns a campaign map with its direct children.
func (s *MapService) GetMap(userID, campaignID, mapID uint) (*MapNode, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}

	m, err := s.maps.FindByID(mapID)
	if err != nil {
		return nil, Internal(err)
	}
	if m == nil || m.CampaignID != campaignID {
		return nil, NotFound("This map does not exist.")
	}

	children, err := s.maps.FindChildren(m.ID)
	if err != nil {
		return nil, Internal(err)
	}
	return &MapNode{Map: *m, Children: children}, nil
}

// GetRoots returns the campaign's top-level maps.
func (s *MapService) GetRoots(userID, campaignID uint) ([]models.Map, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	maps, err := s.maps.FindRoots(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	return maps, nil
}

// SetParent reattaches a map below a new parent, rejecting moves that
// would make the map its own ancestor.
func (s *MapService) SetParent(userID, campaignID, mapID uint, parentID *uint) (*models.Map, error) {
	node, err := s.GetMap(userID, campaignID, mapID)
	if err != nil {
		return nil, err
	}
	m := node.Map

	if parentID != nil {
		parent, err := s.maps.FindByID(*parentID)
		if err != nil {
			return nil, Internal(err)
		}
		if parent == nil || parent.CampaignID != campaignID {
			return nil, NotFound("This map does not exist.")
		}
		cyclic, err := s.wouldCycle(mapID, parent)
		if err != nil {
			return nil, err
		}
		if cyclic {
			return nil, Validation("A map cannot be its own ancestor.")
		}
	}

	m.ParentMapID = parentID
	if err := s.maps.Save(&m); err != nil {
		return nil, Internal(err)
	}
	return &m, nil
}

// wouldCycle walks up from the candidate parent and reports whether mapID
// appears among its ancestors.
func (s *MapService) wouldCycle(mapID uint, parent *models.Map) (bool, error) {
	for parent != nil {
		if parent.ID == mapID {
			return true, nil
		}
		if parent.ParentMapID == nil {
			return false, nil
		}
		next, err := s.maps.FindByID(*parent.ParentMapID)
		if err != nil {
			return false, Internal(err)
		}
		parent = next
	}
	return false, nil
}

func (s *MapService) storeFile(fileName string, file io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(fileName)
	path := filepath.Join(s.uploadDir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s", name), nil
}

// SaveCreatedMap stores output from the map creation tool.
func (s *MapService) SaveCreatedMap(userID, campaignID uint, name, mapBase64 string,
	gridSize int, gridType string) (*models.CreatedMap, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, Validation("No map name specified.")
	}
	if mapBase64 == "" {
		return nil, Validation("No map image specified.")
	}

	m := models.NewCreatedMap(campaignID, mapBase64, name, userID)
	if gridSize > 0 {
		m.GridSize = gridSize
	}
	if gridType != "" {
		m.GridType = gridType
	}
	if err := s.maps.CreateCreatedMap(m); err != nil {
		return nil, Internal(err)
	}
	return m, nil
}

func (s *MapService) GetCreatedMaps(userID, campaignID uint) ([]models.CreatedMap, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	maps, err := s.maps.FindCreatedMaps(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	return maps, nil
}

// SaveBattlemap stores an encounter map blob, credited to the caller's
// player in the campaign when one exists.
func (s *MapService) SaveBattlemap(userID, campaignID uint, name, data string) (*models.Battlemap, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, Validation("No battlemap name specified.")
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

	m := models.NewBattlemap(campaignID, creatorID, name, data)
	if err := s.maps.CreateBattlemap(m); err != nil {
		return nil, Internal(err)
	}
	return m, nil
}

func (s *MapService) GetBattlemaps(userID, campaignID uint) ([]models.Battlemap, error) {
	if _, err := s.campaigns.RequireMember(userID, campaignID); err != nil {
		return nil, err
	}
	maps, err := s.maps.FindBattlemaps(campaignID)
	if err != nil {
		return nil, Internal(err)
	}
	return maps, nil
}
