package repository

import (
	"errors"

	"dmscreen/models"

	"gorm.io/gorm"
)

type MapRepository struct {
	db *gorm.DB
}

func NewMapRepository(db *gorm.DB) *MapRepository {
	return &MapRepository{db: db}
}

func (r *MapRepository) FindByID(id uint) (*models.Map, error) {
	var m models.Map
	err := r.db.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MapRepository) FindByCampaign(campaignID uint) ([]models.Map, error) {
	var maps []models.Map
	err := r.db.Where("campaign_id = ?", campaignID).Find(&maps).Error
	return maps, err
}

// FindRoots returns a campaign's maps that have no parent.
func (r *MapRepository) FindRoots(campaignID uint) ([]models.Map, error) {
	var maps []models.Map
	err := r.db.Where("campaign_id = ? AND parent_map_id IS NULL", campaignID).
		Find(&maps).Error
	return maps, err
}

func (r *MapRepository) FindChildren(parentID uint) ([]models.Map, error) {
	var maps []models.Map
	err := r.db.Where("parent_map_id = ?", parentID).Find(&maps).Error
	return maps, err
}

func (r *MapRepository) Create(m *models.Map) error {
	return r.db.Create(m).Error
}

func (r *MapRepository) Save(m *models.Map) error {
	return r.db.Save(m).Error
}

func (r *MapRepository) Delete(m *models.Map) error {
	return r.db.Delete(m).Error
}

func (r *MapRepository) CreateCreatedMap(m *models.CreatedMap) error {
	return r.db.Create(m).Error
}

func (r *MapRepository) SaveCreatedMap(m *models.CreatedMap) error {
	return r.db.Save(m).Error
}

func (r *MapRepository) FindCreatedMap(id uint) (*models.CreatedMap, error) {
	var m models.CreatedMap
	err := r.db.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MapRepository) FindCreatedMaps(campaignID uint) ([]models.CreatedMap, error) {
	var maps []models.CreatedMap
	err := r.db.Where("campaign_id = ?", campaignID).Find(&maps).Error
	return maps, err
}

func (r *MapRepository) CreateBattlemap(m *models.Battlemap) error {
	return r.db.Create(m).Error
}

func (r *MapRepository) FindBattlemaps(campaignID uint) ([]models.Battlemap, error) {
	var maps []models.Battlemap
	err := r.db.Where("campaign_id = ?", campaignID).Find(&maps).Error
	return maps, err
}
