package testutils

import (
	"path/filepath"
	"testing"

	"players-api/internal/config"
	"players-api/internal/database"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ------------------------------
// Base suite types
// ------------------------------
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
	Path   string
}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite opens a fresh SQLite store in a per-test temporary directory.
// The store is closed automatically when the test ends.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players-sqlite3.db")

	db, err := database.Initialize(path, &database.Options{LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	return &BaseTestSuite{
		DB:   db,
		Path: path,
		Config: &config.Config{
			Environment:     "test",
			Port:            "8080",
			LogLevel:        "debug",
			StoragePath:     path,
			DatabaseURL:     path,
			CacheTTLSeconds: 600,
		},
	}
}

// RunWithTestSuite is a convenience wrapper to run a function with a ready suite.
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only cleans the tables; the store itself is removed with the temp dir.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties known tables if they exist. Safe even if schema changes.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"players",
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM "` + t + `"`)
		}
	}
}
