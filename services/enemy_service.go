package services

import (
	"dmscreen/models"
	"dmscreen/repository"
)

type EnemyService struct {
	enemies *repository.EnemyRepository
}

func NewEnemyService(enemies *repository.EnemyRepository) *EnemyService {
	return &EnemyService{enemies: enemies}
}

// EnemyStats are the optional ability scores supplied when creating or
// updating an enemy.
type EnemyStats struct {
	Strength     *int `json:"str"`
	Dexterity    *int `json:"dex"`
	Constitution *int `json:"con"`
	Intelligence *int `json:"int"`
	Wisdom       *int `json:"wis"`
	Charisma     *int `json:"cha"`
}

func (s *EnemyService) GetEnemies(userID uint) ([]models.Enemy, error) {
	enemies, err := s.enemies.FindByUser(userID)
	if err != nil {
		return nil, Internal(err)
	}
	return enemies, nil
}

func (s *EnemyService) requireOwnedEnemy(userID, enemyID uint) (*models.Enemy, error) {
	enemy, err := s.enemies.FindByID(enemyID)
	if err != nil {
		return nil, Internal(err)
	}
	if enemy == nil {
		return nil, NotFound("This enemy does not exist.")
	}
	if enemy.UserID != userID {
		return nil, Forbidden("This enemy does not belong to you.")
	}
	return enemy, nil
}

func (s *EnemyService) GetEnemy(userID, enemyID uint) (*models.Enemy, error) {
	return s.requireOwnedEnemy(userID, enemyID)
}

func (s *EnemyService) CreateEnemy(userID uint, name string, maxHP, armorClass int, stats *EnemyStats) (*models.Enemy, error) {
	if name == "" {
		return nil, Validation("No enemy name specified.")
	}

	enemy := models.NewEnemy(name, maxHP, armorClass, userID)
	if stats != nil {
		enemy.Strength = stats.Strength
		enemy.Dexterity = stats.Dexterity
		enemy.Constitution = stats.Constitution
		enemy.Intelligence = stats.Intelligence
		enemy.Wisdom = stats.Wisdom
		enemy.Charisma = stats.Charisma
	}
	if err := s.enemies.Create(enemy); err != nil {
		return nil, Internal(err)
	}
	return enemy, nil
}

func (s *EnemyService) UpdateEnemy(userID, enemyID uint, name string, maxHP, armorClass *int, stats *EnemyStats) (*models.Enemy, error) {
	enemy, err := s.requireOwnedEnemy(userID, enemyID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		enemy.Name = name
	}
	if maxHP != nil {
		enemy.MaxHP = *maxHP
	}
	if armorClass != nil {
		enemy.ArmorClass = *armorClass
	}
	if stats != nil {
		if stats.Strength != nil {
			enemy.Strength = stats.Strength
		}
		if stats.Dexterity != nil {
			enemy.Dexterity = stats.Dexterity
		}
		if stats.Constitution != nil {
			enemy.Constitution = stats.Constitution
		}
		if stats.Intelligence != nil {
			enemy.Intelligence = stats.Intelligence
		}
		if stats.Wisdom != nil {
			enemy.Wisdom = stats.Wisdom
		}
		if stats.Charisma != nil {
			enemy.Charisma = stats.Charisma
		}
	}

	if err := s.enemies.Save(enemy); err != nil {
		return nil, Internal(err)
	}
	return enemy, nil
}

func (s *EnemyService) DeleteEnemy(userID, enemyID uint) error {
	enemy, err := s.requireOwnedEnemy(userID, enemyID)
	if err != nil {
		return err
	}
	if err := s.enemies.Delete(enemy); err != nil {
		return Internal(err)
	}
	return nil
}

func (s *EnemyService) AddAbility(userID, enemyID uint, text string) (*models.EnemyAbility, error) {
	if _, err := s.requireOwnedEnemy(userID, enemyID); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, Validation("No ability text specified.")
	}

	ability := models.NewEnemyAbility(enemyID, text)
	if err := s.enemies.AddAbility(ability); err != nil {
		return nil, Internal(err)
	}
	return ability, nil
}

func (s *EnemyService) GetAbilities(userID, enemyID uint) ([]models.EnemyAbility, error) {
	if _, err := s.requireOwnedEnemy(userID, enemyID); err != nil {
		return nil, err
	}
	abilities, err := s.enemies.FindAbilities(enemyID)
	if err != nil {
		return nil, Internal(err)
	}
	return abilities, nil
}

func (s *EnemyService) DeleteAbility(userID, abilityID uint) error {
	ability, err := s.enemies.FindAbility(abilityID)
	if err != nil {
		return Internal(err)
	}
	if ability == nil {
		return NotFound("This ability does not exist.")
	}
	if _, err := s.requireOwnedEnemy(userID, ability.EnemyID); err != nil {
		return err
	}
	if err := s.enemies.DeleteAbility(ability); err != nil {
		return Internal(err)
	}
	return nil
}
