package service

import (
	"context"
	"errors"

	"players-api/internal/database/models"
	apperrors "players-api/internal/errors"
	"players-api/internal/identity"
	"players-api/internal/logger"
	"players-api/internal/metrics"
	"players-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const playerEntity = "player"

// PlayerService enforces the identity rules of players: squad numbers are
// unique, ids are immutable, and storage errors never reach the caller raw.
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	validator *validator.Validate
	metrics   metrics.Metrics
	ids       identity.Generator
}

// Ensure PlayerService implements PlayerServiceInterface
var _ PlayerServiceInterface = (*PlayerService)(nil)

// NewPlayerService creates a new PlayerService. API-created players get random ids.
func NewPlayerService(repo repository.PlayerRepositoryInterface, validator *validator.Validate, m metrics.Metrics) *PlayerService {
	return &PlayerService{
		repo:      repo,
		validator: validator,
		metrics:   m,
		ids:       identity.Random(),
	}
}

// PlayerRequest is the create and full-replace payload
type PlayerRequest struct {
	FirstName    string  `json:"firstName" validate:"required" example:"Thiago"`
	MiddleName   *string `json:"middleName,omitempty"`
	LastName     string  `json:"lastName" validate:"required" example:"Almada"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty" example:"2001-04-26T00:00:00.000Z"`
	SquadNumber  int     `json:"squadNumber" validate:"required" example:"16"`
	Position     string  `json:"position" validate:"required" example:"Attacking Midfield"`
	AbbrPosition *string `json:"abbrPosition,omitempty" example:"AM"`
	Team         *string `json:"team,omitempty" example:"Atlanta United FC"`
	League       *string `json:"league,omitempty" example:"Major League Soccer"`
	Starting11   *bool   `json:"starting11,omitempty" example:"false"`
}

// PlayerResponse is a persisted player as exposed to clients
type PlayerResponse struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	MiddleName   *string   `json:"middleName"`
	LastName     string    `json:"lastName"`
	DateOfBirth  *string   `json:"dateOfBirth"`
	SquadNumber  int       `json:"squadNumber"`
	Position     string    `json:"position"`
	AbbrPosition *string   `json:"abbrPosition"`
	Team         *string   `json:"team"`
	League       *string   `json:"league"`
	Starting11   *bool     `json:"starting11"`
}

// Create persists a new player with a freshly generated id.
// Returns ErrPlayerExists when the squad number is taken.
func (s *PlayerService) Create(ctx context.Context, req *PlayerRequest) (*PlayerResponse, error) {
	return s.create(ctx, s.ids.NewID(), req)
}

// CreateWithID persists a new player under a caller-supplied id, e.g. a
// deterministic fixture id.
func (s *PlayerService) CreateWithID(ctx context.Context, id uuid.UUID, req *PlayerRequest) (*PlayerResponse, error) {
	if id == uuid.Nil {
		return nil, apperrors.ErrInvalidPlayerID
	}
	return s.create(ctx, id, req)
}

func (s *PlayerService) create(ctx context.Context, id uuid.UUID, req *PlayerRequest) (*PlayerResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetBySquadNumber(ctx, req.SquadNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.persistenceFailure(ctx, "create", id, req.SquadNumber, err)
	}
	if existing != nil {
		return nil, apperrors.ErrPlayerExists
	}

	player := fromRequest(req)
	player.ID = id
	if err := s.repo.Create(ctx, player); err != nil {
		// lost a race with a concurrent create of the same squad number
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPlayerExists
		}
		return nil, s.persistenceFailure(ctx, "create", id, req.SquadNumber, err)
	}

	resp := toResponse(player)
	return &resp, nil
}

// GetAll retrieves every player in store order
func (s *PlayerService) GetAll(ctx context.Context) ([]PlayerResponse, error) {
	players, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.persistenceFailure(ctx, "retrieve", uuid.Nil, 0, err)
	}

	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = toResponse(&players[i])
	}
	return responses, nil
}

// GetByID retrieves a player by surrogate key
func (s *PlayerService) GetByID(ctx context.Context, id uuid.UUID) (*PlayerResponse, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, s.persistenceFailure(ctx, "retrieve", id, 0, err)
	}
	resp := toResponse(player)
	return &resp, nil
}

// GetBySquadNumber retrieves a player by natural key
func (s *PlayerService) GetBySquadNumber(ctx context.Context, squadNumber int) (*PlayerResponse, error) {
	player, err := s.repo.GetBySquadNumber(ctx, squadNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, s.persistenceFailure(ctx, "retrieve", uuid.Nil, squadNumber, err)
	}
	resp := toResponse(player)
	return &resp, nil
}

// Update replaces every non-identity field of an existing player. The stored
// squad number is kept; the one in req is validated but not applied.
func (s *PlayerService) Update(ctx context.Context, id uuid.UUID, req *PlayerRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return s.persistenceFailure(ctx, "update", id, req.SquadNumber, err)
	}

	player := fromRequest(req)
	player.ID = existing.ID
	player.SquadNumber = existing.SquadNumber
	if err := s.repo.Update(ctx, player); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return s.persistenceFailure(ctx, "update", id, existing.SquadNumber, err)
	}
	return nil
}

// Delete physically removes a player
func (s *PlayerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return s.persistenceFailure(ctx, "delete", id, 0, err)
	}
	return nil
}

// validate runs the struct rules and reports the first failing field by its external name
func (s *PlayerService) validate(req *PlayerRequest) error {
	if req == nil {
		return apperrors.NewValidationError("", "request body is required")
	}
	if err := s.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.NewValidationError(jsonFieldName(fe.StructField()), fe.Tag())
		}
		return apperrors.NewValidationError("", err.Error())
	}
	return nil
}

// persistenceFailure logs a storage error with its context and hides it behind a PersistenceError
func (s *PlayerService) persistenceFailure(ctx context.Context, operation string, id uuid.UUID, squadNumber int, err error) error {
	fields := map[string]interface{}{
		"operation": operation,
	}
	if id != uuid.Nil {
		fields["player_id"] = id.String()
	}
	if squadNumber != 0 {
		fields["squad_number"] = squadNumber
	}
	logger.WithContext(ctx).WithFields(fields).WithError(err).Error("player persistence failure")

	if s.metrics != nil {
		s.metrics.IncPersistenceFailure(operation)
	}
	return apperrors.NewPersistenceError(operation, playerEntity, err)
}

func jsonFieldName(structField string) string {
	if name, ok := models.JSONForField(structField); ok {
		return name
	}
	return structField
}

func fromRequest(req *PlayerRequest) *models.Player {
	return &models.Player{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		SquadNumber:  req.SquadNumber,
		Position:     req.Position,
		AbbrPosition: req.AbbrPosition,
		Team:         req.Team,
		League:       req.League,
		Starting11:   req.Starting11,
	}
}

// toResponse converts a Player model to API response
func toResponse(p *models.Player) PlayerResponse {
	return PlayerResponse{
		ID:           p.ID,
		FirstName:    p.FirstName,
		MiddleName:   p.MiddleName,
		LastName:     p.LastName,
		DateOfBirth:  p.DateOfBirth,
		SquadNumber:  p.SquadNumber,
		Position:     p.Position,
		AbbrPosition: p.AbbrPosition,
		Team:         p.Team,
		League:       p.League,
		Starting11:   p.Starting11,
	}
}
