package database

import (
	"path/filepath"
	"testing"

	"players-api/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost:5432/db"))
	assert.True(t, IsPostgres("postgresql://localhost/db"))
	assert.False(t, IsPostgres("./storage/players-sqlite3.db"))
	assert.False(t, IsPostgres("file:players.db?_busy_timeout=5000"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseLogLevel("silent"))
	assert.Equal(t, logger.Warn, ParseLogLevel("warn"))
	assert.Equal(t, logger.Info, ParseLogLevel("info"))
	assert.Equal(t, logger.Error, ParseLogLevel("error"))
	assert.Equal(t, logger.Error, ParseLogLevel(""))
}

func TestInitializeCreatesSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "players.db")

	db, err := Initialize(path, &Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	defer Close(db)

	assert.FileExists(t, path)
	assert.True(t, db.Migrator().HasTable(&models.Player{}))
	assert.True(t, db.Migrator().HasColumn(&models.Player{}, "squadNumber"))
}

func TestInitializeKeepsExistingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.db")

	db, err := Initialize(path, &Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Player{FirstName: "Lionel", LastName: "Messi", SquadNumber: 10, Position: "Right Winger"}).Error)
	require.NoError(t, Close(db))

	db, err = Initialize(path, &Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	defer Close(db)

	var count int64
	require.NoError(t, db.Model(&models.Player{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSkipSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.db")

	db, err := Initialize(path, &Options{LogLevel: logger.Silent, SkipSchema: true})
	require.NoError(t, err)
	defer Close(db)

	assert.False(t, db.Migrator().HasTable(&models.Player{}))
	require.NoError(t, EnsureSchema(db))
	assert.True(t, db.Migrator().HasTable(&models.Player{}))
}
