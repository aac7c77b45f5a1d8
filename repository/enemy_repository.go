package repository

import (
	"errors"

	"dmscreen/models"

	"gorm.io/gorm"
)

type EnemyRepository struct {
	db *gorm.DB
}

func NewEnemyRepository(db *gorm.DB) *EnemyRepository {
	return &EnemyRepository{db: db}
}

func (r *EnemyRepository) FindByID(id uint) (*models.Enemy, error) {
	var enemy models.Enemy
	err := r.db.First(&enemy, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enemy, nil
}

func (r *EnemyRepository) FindByUser(userID uint) ([]models.Enemy, error) {
	var enemies []models.Enemy
	err := r.db.Where("user_id = ?", userID).Order("name").Find(&enemies).Error
	return enemies, err
}

func (r *EnemyRepository) Create(enemy *models.Enemy) error {
	return r.db.Create(enemy).Error
}

func (r *EnemyRepository) Save(enemy *models.Enemy) error {
	return r.db.Save(enemy).Error
}

func (r *EnemyRepository) Delete(enemy *models.Enemy) error {
	return r.db.Delete(enemy).Error
}

func (r *EnemyRepository) AddAbility(ability *models.EnemyAbility) error {
	return r.db.Create(ability).Error
}

func (r *EnemyRepository) FindAbilities(enemyID uint) ([]models.EnemyAbility, error) {
	var abilities []models.EnemyAbility
	err := r.db.Where("enemy_id = ?", enemyID).Find(&abilities).Error
	return abilities, err
}

func (r *EnemyRepository) FindAbility(id uint) (*models.EnemyAbility, error) {
	var ability models.EnemyAbility
	err := r.db.First(&ability, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ability, nil
}

func (r *EnemyRepository) DeleteAbility(ability *models.EnemyAbility) error {
	return r.db.Delete(ability).Error
}
