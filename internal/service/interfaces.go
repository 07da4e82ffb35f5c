package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(ctx context.Context, req *PlayerRequest) (*PlayerResponse, error)
	CreateWithID(ctx context.Context, id uuid.UUID, req *PlayerRequest) (*PlayerResponse, error)
	GetAll(ctx context.Context) ([]PlayerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PlayerResponse, error)
	GetBySquadNumber(ctx context.Context, squadNumber int) (*PlayerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *PlayerRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}
