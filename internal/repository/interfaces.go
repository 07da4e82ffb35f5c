package repository

import (
	"context"

	"players-api/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(ctx context.Context, player *models.Player) error
	GetAll(ctx context.Context) ([]models.Player, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetBySquadNumber(ctx context.Context, squadNumber int) (*models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id uuid.UUID) error
}
