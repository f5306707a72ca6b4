package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fiscaldesk/portal/models"
	"github.com/fiscaldesk/portal/recurrence"
)

const taxSelectQuery = `SELECT id, name, description, due_day, created_at FROM taxes`

func scanTax(s scanner) (models.Tax, error) {
	var t models.Tax
	err := s.Scan(&t.ID, &t.Name, &t.Description, &t.DueDay, &t.CreatedAt)
	return t, err
}

// ListTaxes returns the full tax snapshot, newest first.
func (s *Store) ListTaxes(ctx context.Context) ([]models.Tax, error) {
	rows, err := s.db.QueryContext(ctx, taxSelectQuery+" ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing taxes: %w", err)
	}
	defer rows.Close()

	taxes := []models.Tax{}
	for rows.Next() {
		t, err := scanTax(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tax: %w", err)
		}
		taxes = append(taxes, t)
	}
	return taxes, rows.Err()
}

// GetTax returns a single tax by id.
func (s *Store) GetTax(ctx context.Context, id string) (models.Tax, error) {
	t, err := scanTax(s.db.QueryRowContext(ctx, taxSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tax{}, ErrNotFound
	}
	return t, err
}

// SaveTax upserts a tax by id: update first, insert when the id is new.
// Landing a second tax on an occupied (name, created_at period) slot returns
// recurrence.ErrDuplicateGeneration.
func (s *Store) SaveTax(ctx context.Context, t models.Tax) error {
	res, err := s.db.ExecContext(ctx, `UPDATE taxes SET
		name = ?, description = ?, due_day = ? WHERE id = ?`,
		t.Name, t.Description, t.DueDay, t.ID)
	if err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
		_, err = s.db.ExecContext(ctx, `INSERT INTO taxes (id, name, description, due_day, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Name, t.Description, t.DueDay, t.CreatedAt)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("tax %q: %w", t.Name, recurrence.ErrDuplicateGeneration)
	}
	if err != nil {
		return fmt.Errorf("saving tax %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTax removes a tax.
func (s *Store) DeleteTax(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM taxes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tax %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
