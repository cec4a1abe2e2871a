package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"takenotes/internal/domain"
	"takenotes/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// ErrOrphanRecord is returned by Load when a stored label's parent is
// missing or the parent links loop
var ErrOrphanRecord = errors.New("orphan label record")

// Store implements ports.LabelRepository using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements LabelRepository
var _ ports.LabelRepository = (*Store)(nil)

// Open opens (creating if needed) the label database at dbPath
func Open(dbPath string) (*Store, error) {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS labels (
			kind TEXT NOT NULL,
			id TEXT NOT NULL,
			parent_id TEXT,
			name TEXT NOT NULL,
			path TEXT NOT NULL,
			sort_order INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			icon TEXT NOT NULL,
			color TEXT,
			pinned INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (kind, id)
		);
		CREATE TABLE IF NOT EXISTS retired_labels (
			kind TEXT NOT NULL,
			id TEXT NOT NULL,
			PRIMARY KEY (kind, id)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_labels_parent ON labels(kind, parent_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.checkSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// connPragmas are applied by the driver to every pooled connection
var connPragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
	"temp_store(MEMORY)",
}

func dsn(dbPath string) string {
	q := url.Values{}
	for _, p := range connPragmas {
		q.Add("_pragma", p)
	}
	return dbPath + "?" + q.Encode()
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// checkSchema stamps a fresh database and refuses one written by an
// incompatible version
func (s *Store) checkSchema() error {
	var version string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.Exec(`INSERT INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
		if err != nil {
			return fmt.Errorf("failed to update metadata: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to read metadata: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("unsupported schema version %q (expected %s)", version, schemaVersion)
	}
	return nil
}

// Load returns the kind's records ordered so every parent precedes its
// children, siblings by sort order
func (s *Store) Load(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, parent_id, name, path, sort_order, created_at, updated_at, icon, color, pinned
		FROM labels WHERE kind = ?
		ORDER BY sort_order, rowid
	`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var (
			r         domain.Record
			id        string
			parentID  sql.NullString
			color     sql.NullString
			icon      string
			createdAt int64
			updatedAt int64
		)
		err := rows.Scan(&id, &parentID, &r.Name, &r.Path, &r.SortOrder, &createdAt, &updatedAt, &icon, &color, &r.Pinned)
		if err != nil {
			return nil, err
		}

		r.Kind = kind
		r.ID = domain.NodeID(id)
		if parentID.Valid {
			pid := domain.NodeID(parentID.String)
			r.ParentID = &pid
		}
		if color.Valid {
			c := color.String
			r.ColorHex = &c
		}
		r.CreatedAt = time.Unix(0, createdAt).UTC()
		r.UpdatedAt = time.Unix(0, updatedAt).UTC()
		if err := json.Unmarshal([]byte(icon), &r.Icon); err != nil {
			return nil, fmt.Errorf("label %s: invalid icon: %w", id, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parentsFirst(records)
}

// Retired returns the kind's deleted IDs
func (s *Store) Retired(ctx context.Context, kind domain.Kind) ([]domain.NodeID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM retired_labels WHERE kind = ? ORDER BY id`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []domain.NodeID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, domain.NodeID(id))
	}
	return ids, rows.Err()
}

// Save replaces every stored record and retired ID of the kind in one
// transaction
func (s *Store) Save(ctx context.Context, kind domain.Kind, records []domain.Record, retired []domain.NodeID) error {
	tx, err := s.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := tx.DeleteKind(kind); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear %s: %w", kind.Plural(), err)
	}
	for i := range records {
		if err := tx.InsertRecord(kind, &records[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert %s %s: %w", kind, records[i].ID, err)
		}
	}
	for _, id := range retired {
		if err := tx.RetireID(kind, id); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to retire %s %s: %w", kind, id, err)
		}
	}

	return tx.Commit()
}

// parentsFirst orders records depth-first from the roots. Stored paths are
// never used for ordering; a record whose parent chain does not reach a
// root is reported.
func parentsFirst(records []domain.Record) ([]domain.Record, error) {
	children := make(map[domain.NodeID][]int)
	var roots []int
	for i, r := range records {
		if r.ParentID == nil {
			roots = append(roots, i)
			continue
		}
		children[*r.ParentID] = append(children[*r.ParentID], i)
	}

	out := make([]domain.Record, 0, len(records))
	var visit func(i int)
	visit = func(i int) {
		out = append(out, records[i])
		for _, c := range children[records[i].ID] {
			visit(c)
		}
	}
	for _, i := range roots {
		visit(i)
	}

	if len(out) != len(records) {
		placed := make(map[domain.NodeID]struct{}, len(out))
		for _, r := range out {
			placed[r.ID] = struct{}{}
		}
		for _, r := range records {
			if _, ok := placed[r.ID]; !ok {
				return nil, fmt.Errorf("%w: %s (parent %s)", ErrOrphanRecord, r.ID, *r.ParentID)
			}
		}
	}
	return out, nil
}
