package seed

import (
	"embed"
	"fmt"

	"players-api/internal/identity"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

// PlayerData is one fixture row, in the camelCase naming of the API
type PlayerData struct {
	SquadNumber  int     `yaml:"squadNumber"`
	FirstName    string  `yaml:"firstName"`
	MiddleName   *string `yaml:"middleName,omitempty"`
	LastName     string  `yaml:"lastName"`
	DateOfBirth  *string `yaml:"dateOfBirth,omitempty"`
	Position     string  `yaml:"position"`
	AbbrPosition *string `yaml:"abbrPosition,omitempty"`
	Team         *string `yaml:"team,omitempty"`
	League       *string `yaml:"league,omitempty"`
	Starting11   bool    `yaml:"starting11"`
}

// PlayersFile is the layout of a fixture file
type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

// ID is the deterministic surrogate key of the fixture
func (p PlayerData) ID() uuid.UUID {
	return identity.PlayerID(p.SquadNumber, p.FirstName, p.LastName)
}

// LoadFixtures reads an embedded fixture file
func LoadFixtures(name string) ([]PlayerData, error) {
	data, err := fixtureFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}

	var file PlayersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", name, err)
	}
	if len(file.Players) == 0 {
		return nil, fmt.Errorf("fixture %s has no players", name)
	}
	return file.Players, nil
}
