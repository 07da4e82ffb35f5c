package repository

import (
	"context"

	"players-api/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ PlayerRepositoryInterface = (*PlayerRepository)(nil)

// PlayerRepository handles database operations for players. Every call runs
// on a session bound to the caller's context; mutations run in their own
// transaction and are rolled back on any error.
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create inserts a new player. A zero ID is filled by the model hook.
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(player).Error
	})
}

// GetAll retrieves every player in store order
func (r *PlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	if err := r.db.WithContext(ctx).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// GetByID retrieves a player by surrogate key
func (r *PlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetBySquadNumber retrieves a player by natural key
func (r *PlayerRepository) GetBySquadNumber(ctx context.Context, squadNumber int) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).Where(`"squadNumber" = ?`, squadNumber).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Update overwrites every non-identity column of the player with the given ID.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *PlayerRepository) Update(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Player{ID: player.ID}).
			Select(models.PlayerUpdatableColumns()).
			Updates(player)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete physically removes a player. Returns gorm.ErrRecordNotFound when no row matched.
func (r *PlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Player{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
