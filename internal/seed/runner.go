// Package seed populates a SQLite players store with the canonical squad.
//
// Every run is idempotent: when all fixture ids are already present nothing
// is touched. Schema migrations copy the store aside before any destructive
// step, and all inserts of one migration commit or roll back together.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	apperrors "players-api/internal/errors"
	"players-api/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

// BackupTimeFormat is the timestamp suffix of backup files
const BackupTimeFormat = "20060102T150405"

// Result summarizes one migration run
type Result struct {
	Migration  string
	Inserted   int
	NoOp       bool
	BackupPath string
	// Skipped lists fixture squad numbers already held by other rows
	Skipped []int
}

// Runner applies migrations to the SQLite file at path
type Runner struct {
	path string
	now  func() time.Time
}

// Option configures a Runner
type Option func(*Runner)

// WithClock overrides the clock used for backup names
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner creates a runner for the store at path
func NewRunner(path string, opts ...Option) *Runner {
	r := &Runner{path: path, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies m. It returns a MigrationError when a prerequisite is missing;
// in that case the store has not been modified.
func (r *Runner) Run(ctx context.Context, m Migration) (*Result, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"migration": m.Name,
		"db_path":   r.path,
	})

	players, err := LoadFixtures(m.Fixtures)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(r.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewMigrationError(m.Name, "database file not found: "+r.path)
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}

	db, err := open(ctx, r.path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	idType, err := idColumnType(ctx, db)
	if err != nil {
		return nil, err
	}
	textKeys := strings.EqualFold(idType, "TEXT")
	log.WithField("id_type", idType).Debug("inspected players table")

	if !m.Schema {
		if idType == "" {
			return nil, apperrors.NewMigrationError(m.Name, "players table not found; run "+StartingEleven.Name+" first")
		}
		if !textKeys {
			return nil, apperrors.NewMigrationError(m.Name, "players table still uses "+idType+" keys; run "+StartingEleven.Name+" first")
		}
	}

	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID().String()
	}
	if textKeys {
		present, err := allPresent(ctx, db, ids)
		if err != nil {
			return nil, err
		}
		if present {
			log.Info("fixtures already present, nothing to do")
			return &Result{Migration: m.Name, NoOp: true}, nil
		}
	}

	result := &Result{Migration: m.Name}
	if m.Schema {
		result.BackupPath, err = r.backup(ctx, db)
		if err != nil {
			return nil, err
		}
		log.WithField("backup", result.BackupPath).Info("database backed up")
	}

	if m.Schema && idType != "" && !textKeys {
		log.WithField("id_type", idType).Info("replacing legacy players table")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	inserted, skipped, err := apply(ctx, tx, m, idType, players)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.WithError(rbErr).Error("rollback failed")
		}
		log.WithError(err).Error("seeding failed, changes rolled back")
		return nil, apperrors.NewPersistenceError("seed", "players", err)
	}
	if err := tx.Commit(); err != nil {
		log.WithError(err).Error("commit failed")
		return nil, apperrors.NewPersistenceError("seed", "players", err)
	}

	result.Inserted = inserted
	result.Skipped = skipped
	if len(skipped) > 0 {
		log.WithField("squad_numbers", skipped).Warn("fixtures skipped, squad number held by another row")
	}
	log.WithField("inserted", inserted).Info("migration applied")
	return result, nil
}

// RunAll applies every migration in order and stops at the first failure
func (r *Runner) RunAll(ctx context.Context) ([]*Result, error) {
	var results []*Result
	for _, m := range All() {
		res, err := r.Run(ctx, m)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func apply(ctx context.Context, tx *sql.Tx, m Migration, idType string, players []PlayerData) (int, []int, error) {
	if m.Schema {
		if idType != "" && !strings.EqualFold(idType, "TEXT") {
			if _, err := tx.ExecContext(ctx, "DROP TABLE players"); err != nil {
				return 0, nil, fmt.Errorf("drop legacy table: %w", err)
			}
		}
		if _, err := tx.ExecContext(ctx, createPlayersTable); err != nil {
			return 0, nil, fmt.Errorf("create table: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertPlayer)
	if err != nil {
		return 0, nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	var skipped []int
	for _, p := range players {
		id := p.ID().String()
		res, err := stmt.ExecContext(ctx,
			id, p.FirstName, p.MiddleName, p.LastName, p.DateOfBirth,
			p.SquadNumber, p.Position, p.AbbrPosition, p.Team, p.League, p.Starting11,
		)
		if err != nil {
			return 0, nil, fmt.Errorf("insert squad number %d: %w", p.SquadNumber, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, nil, err
		}
		if n == 0 {
			var exists int
			if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM players WHERE id = ?", id).Scan(&exists); err != nil {
				return 0, nil, fmt.Errorf("check squad number %d: %w", p.SquadNumber, err)
			}
			// the fixture row itself is present; only a foreign row counts as skipped
			if exists == 0 {
				skipped = append(skipped, p.SquadNumber)
			}
		}
		inserted += int(n)
	}
	return inserted, skipped, nil
}

func open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// pragmas are per connection
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return db, nil
}

// idColumnType returns the declared type of players.id, or "" when the table is absent
func idColumnType(ctx context.Context, db *sql.DB) (string, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info(players)")
	if err != nil {
		return "", fmt.Errorf("inspect players table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return "", fmt.Errorf("inspect players table: %w", err)
		}
		if name == "id" {
			return colType, nil
		}
	}
	return "", rows.Err()
}

func allPresent(ctx context.Context, db *sql.DB, ids []string) (bool, error) {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := "SELECT COUNT(*) FROM players WHERE id IN (?" + strings.Repeat(", ?", len(ids)-1) + ")"

	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("count fixtures: %w", err)
	}
	return count == len(ids), nil
}

// backup flushes the WAL into the main file and copies it to a timestamped sibling
func (r *Runner) backup(ctx context.Context, db *sql.DB) (string, error) {
	if _, err := db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return "", fmt.Errorf("checkpoint wal: %w", err)
	}

	dest := r.path + ".bak." + r.now().Format(BackupTimeFormat)
	if err := copyFile(r.path, dest); err != nil {
		return "", fmt.Errorf("backup database: %w", err)
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
