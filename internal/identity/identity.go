// Package identity generates surrogate keys for players.
//
// Records created through the API get a random (version 4) UUID. Records
// inserted by the seeding tool get a deterministic (version 5) UUID derived
// from a namespace and a natural key, so the same fixture always has the same
// id on every machine.
package identity

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayerNamespace is the UUID v5 namespace for seeded players.
// It equals 072c1b2b-b05d-5c72-add4-4126daf082b3.
var PlayerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:players-api:squad"))

// Generator produces a surrogate key.
type Generator interface {
	NewID() uuid.UUID
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() uuid.UUID

// NewID calls f.
func (f GeneratorFunc) NewID() uuid.UUID {
	return f()
}

// Random returns a generator of version 4 UUIDs.
func Random() Generator {
	return GeneratorFunc(uuid.New)
}

// Deterministic returns a generator that always yields the version 5 UUID
// of naturalKey within namespace.
func Deterministic(namespace uuid.UUID, naturalKey string) Generator {
	id := uuid.NewSHA1(namespace, []byte(naturalKey))
	return GeneratorFunc(func() uuid.UUID { return id })
}

// PlayerNaturalKey is the stable name a seeded player's id is derived from.
func PlayerNaturalKey(squadNumber int, firstName, lastName string) string {
	return fmt.Sprintf("%d:%s %s", squadNumber, firstName, lastName)
}

// PlayerID derives the deterministic id of a seeded player.
func PlayerID(squadNumber int, firstName, lastName string) uuid.UUID {
	return Deterministic(PlayerNamespace, PlayerNaturalKey(squadNumber, firstName, lastName)).NewID()
}
