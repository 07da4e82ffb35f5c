package testutils

import (
	"players-api/internal/database/models"
	"players-api/internal/identity"

	"github.com/google/uuid"
)

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// Create creates a test Player with default values (squad number 23)
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		ID:           identity.PlayerID(23, "Emiliano", "Martínez"),
		FirstName:    "Emiliano",
		LastName:     "Martínez",
		DateOfBirth:  strPtr("1992-09-02T00:00:00.000Z"),
		SquadNumber:  23,
		Position:     "Goalkeeper",
		AbbrPosition: strPtr("GK"),
		Team:         strPtr("Aston Villa FC"),
		League:       strPtr("Premier League"),
		Starting11:   boolPtr(true),
	}
}

// Nonexistent creates a player that is not part of the seeded squad (squad number 16)
func (f *PlayerFactory) Nonexistent() *models.Player {
	return &models.Player{
		FirstName:    "Thiago",
		MiddleName:   strPtr("Ezequiel"),
		LastName:     "Almada",
		DateOfBirth:  strPtr("2001-04-26T00:00:00.000Z"),
		SquadNumber:  16,
		Position:     "Attacking Midfield",
		AbbrPosition: strPtr("AM"),
		Team:         strPtr("Botafogo"),
		League:       strPtr("Campeonato Brasileiro Série A"),
		Starting11:   boolPtr(false),
	}
}

// WithSquadNumber creates a player with a custom squad number and a fresh id
func (f *PlayerFactory) WithSquadNumber(squadNumber int) *models.Player {
	p := f.Create()
	p.ID = uuid.New()
	p.SquadNumber = squadNumber
	return p
}

// Unknown returns an id that no fixture or factory produces
func (f *PlayerFactory) Unknown() uuid.UUID {
	return uuid.MustParse("00000000-0000-4000-8000-000000000000")
}

// FactorySet provides access to all factories
type FactorySet struct {
	Player *PlayerFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Player: NewPlayerFactory(),
	}
}
