package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"takenotes/internal/domain"
)

// labelsTx groups the statements of one Save
type labelsTx struct {
	tx *sql.Tx
}

func (s *Store) beginTx(ctx context.Context) (*labelsTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &labelsTx{tx: tx}, nil
}

// DeleteKind removes every record of a kind
func (t *labelsTx) DeleteKind(kind domain.Kind) error {
	_, err := t.tx.Exec(`DELETE FROM labels WHERE kind = ?`, string(kind))
	return err
}

// RetireID records a deleted ID. The set only grows, so existing rows stay.
func (t *labelsTx) RetireID(kind domain.Kind, id domain.NodeID) error {
	_, err := t.tx.Exec(`INSERT OR IGNORE INTO retired_labels (kind, id) VALUES (?, ?)`, string(kind), string(id))
	return err
}

// InsertRecord writes one label row
func (t *labelsTx) InsertRecord(kind domain.Kind, r *domain.Record) error {
	icon, err := json.Marshal(r.Icon)
	if err != nil {
		return err
	}

	var parentID, color sql.NullString
	if r.ParentID != nil {
		parentID = sql.NullString{String: string(*r.ParentID), Valid: true}
	}
	if r.ColorHex != nil {
		color = sql.NullString{String: *r.ColorHex, Valid: true}
	}

	_, err = t.tx.Exec(`
		INSERT INTO labels (kind, id, parent_id, name, path, sort_order, created_at, updated_at, icon, color, pinned)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, string(kind), string(r.ID), parentID, r.Name, r.Path, r.SortOrder,
		r.CreatedAt.UnixNano(), r.UpdatedAt.UnixNano(), string(icon), color, r.Pinned)
	return err
}

// Commit commits the transaction
func (t *labelsTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *labelsTx) Rollback() error {
	return t.tx.Rollback()
}
