package models

import (
	"players-api/internal/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player is a football player. ID is the surrogate key; SquadNumber is the
// unique natural key clients look players up by.
type Player struct {
	ID           uuid.UUID `json:"id" gorm:"column:id;type:text;primaryKey;not null"`
	FirstName    string    `json:"firstName" gorm:"column:firstName;type:text;not null"`
	MiddleName   *string   `json:"middleName" gorm:"column:middleName;type:text"`
	LastName     string    `json:"lastName" gorm:"column:lastName;type:text;not null"`
	DateOfBirth  *string   `json:"dateOfBirth" gorm:"column:dateOfBirth;type:text"`
	SquadNumber  int       `json:"squadNumber" gorm:"column:squadNumber;type:integer;not null;uniqueIndex"`
	Position     string    `json:"position" gorm:"column:position;type:text;not null"`
	AbbrPosition *string   `json:"abbrPosition" gorm:"column:abbrPosition;type:text"`
	Team         *string   `json:"team" gorm:"column:team;type:text"`
	League       *string   `json:"league" gorm:"column:league;type:text"`
	Starting11   *bool     `json:"starting11" gorm:"column:starting11"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// BeforeCreate assigns a random surrogate key when none was supplied
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = identity.Random().NewID()
	}
	return nil
}
