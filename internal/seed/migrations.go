package seed

// Migration is one seeding step. A schema migration owns the players table:
// it backs the store up, converts an integer-keyed table and creates the
// table when missing. A data migration only adds rows to an existing table.
type Migration struct {
	Name     string
	Fixtures string
	Schema   bool
}

var (
	// StartingEleven converts the players table to UUID keys and seeds the starting eleven
	StartingEleven = Migration{
		Name:     "001_starting_eleven",
		Fixtures: "fixtures/starting_eleven.yaml",
		Schema:   true,
	}

	// Substitutes seeds the substitutes into the table StartingEleven created
	Substitutes = Migration{
		Name:     "002_substitutes",
		Fixtures: "fixtures/substitutes.yaml",
	}
)

// All returns every migration in the order they must run
func All() []Migration {
	return []Migration{StartingEleven, Substitutes}
}

const createPlayersTable = `CREATE TABLE IF NOT EXISTS players (
	id           TEXT PRIMARY KEY NOT NULL,
	firstName    TEXT NOT NULL,
	middleName   TEXT,
	lastName     TEXT NOT NULL,
	dateOfBirth  TEXT,
	squadNumber  INTEGER NOT NULL UNIQUE,
	position     TEXT NOT NULL,
	abbrPosition TEXT,
	team         TEXT,
	league       TEXT,
	starting11   INTEGER
)`

const insertPlayer = `INSERT OR IGNORE INTO players
	(id, firstName, middleName, lastName, dateOfBirth, squadNumber, position, abbrPosition, team, league, starting11)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
