package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fiscaldesk/portal/models"
	"github.com/fiscaldesk/portal/recurrence"
)

const obligationSelectQuery = `SELECT o.id, o.name, o.description, o.client_id, o.tax_id, o.due_day, o.due_month,
		o.frequency, o.weekend_rule, o.status, o.auto_generate, o.parent_obligation_id, o.generated_for,
		o.created_at, o.completed_at,
		c.name, t.name
		FROM obligations o
		LEFT JOIN clients c ON o.client_id = c.id
		LEFT JOIN taxes t ON o.tax_id = t.id`

func scanObligation(s scanner) (models.Obligation, error) {
	var o models.Obligation
	err := s.Scan(&o.ID, &o.Name, &o.Description, &o.ClientID, &o.TaxID, &o.DueDay, &o.DueMonth,
		&o.Frequency, &o.WeekendRule, &o.Status, &o.AutoGenerate, &o.ParentObligationID, &o.GeneratedFor,
		&o.CreatedAt, &o.CompletedAt,
		&o.ClientName, &o.TaxName)
	return o, err
}

// ListObligations returns the full obligation snapshot, newest first.
func (s *Store) ListObligations(ctx context.Context) ([]models.Obligation, error) {
	rows, err := s.db.QueryContext(ctx, obligationSelectQuery+" ORDER BY o.created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing obligations: %w", err)
	}
	defer rows.Close()

	obligations := []models.Obligation{}
	for rows.Next() {
		o, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning obligation: %w", err)
		}
		obligations = append(obligations, o)
	}
	return obligations, rows.Err()
}

// GetObligation returns a single obligation by id.
func (s *Store) GetObligation(ctx context.Context, id string) (models.Obligation, error) {
	o, err := scanObligation(s.db.QueryRowContext(ctx, obligationSelectQuery+" WHERE o.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Obligation{}, ErrNotFound
	}
	return o, err
}

// SaveObligation upserts an obligation by id: update first, insert when the
// id is new. The update never touches parent_obligation_id, generated_for, or
// created_at. Inserting a generated instance for a (parent, period) pair that
// already has one returns recurrence.ErrDuplicateGeneration.
func (s *Store) SaveObligation(ctx context.Context, o models.Obligation) error {
	res, err := s.db.ExecContext(ctx, `UPDATE obligations SET
		name = ?, description = ?, client_id = ?, tax_id = ?, due_day = ?, due_month = ?,
		frequency = ?, weekend_rule = ?, status = ?, auto_generate = ?, completed_at = ?
		WHERE id = ?`,
		o.Name, o.Description, o.ClientID, o.TaxID, o.DueDay, o.DueMonth,
		o.Frequency, o.WeekendRule, o.Status, o.AutoGenerate, o.CompletedAt, o.ID)
	if err == nil {
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
		_, err = s.db.ExecContext(ctx, `INSERT INTO obligations
			(id, name, description, client_id, tax_id, due_day, due_month, frequency, weekend_rule,
			status, auto_generate, parent_obligation_id, generated_for, created_at, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			o.ID, o.Name, o.Description, o.ClientID, o.TaxID, o.DueDay, o.DueMonth, o.Frequency, o.WeekendRule,
			o.Status, o.AutoGenerate, o.ParentObligationID, o.GeneratedFor, o.CreatedAt, o.CompletedAt)
	}
	if isUniqueViolation(err) && o.ParentObligationID != nil {
		return fmt.Errorf("obligation %s: %w", o.ID, recurrence.ErrDuplicateGeneration)
	}
	if err != nil {
		return fmt.Errorf("saving obligation %s: %w", o.ID, err)
	}
	return nil
}

// DeleteObligation removes an obligation and, through the schema cascade, the
// instances generated from it.
func (s *Store) DeleteObligation(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM obligations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting obligation %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
