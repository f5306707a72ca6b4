package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fiscaldesk/portal/models"
)

const installmentSelectQuery = `SELECT i.id, i.name, i.client_id, i.tax_id, i.installment_count,
		i.current_installment, i.due_day, i.first_due_date, i.weekend_rule, i.auto_generate,
		i.recurrence, i.recurrence_interval, i.status, i.created_at,
		c.name
		FROM installments i
		LEFT JOIN clients c ON i.client_id = c.id`

func scanInstallment(s scanner) (models.Installment, error) {
	var i models.Installment
	err := s.Scan(&i.ID, &i.Name, &i.ClientID, &i.TaxID, &i.InstallmentCount,
		&i.CurrentInstallment, &i.DueDay, &i.FirstDueDate, &i.WeekendRule, &i.AutoGenerate,
		&i.Recurrence, &i.RecurrenceInterval, &i.Status, &i.CreatedAt,
		&i.ClientName)
	return i, err
}

// ListInstallments returns the full installment snapshot, newest first.
func (s *Store) ListInstallments(ctx context.Context) ([]models.Installment, error) {
	rows, err := s.db.QueryContext(ctx, installmentSelectQuery+" ORDER BY i.created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing installments: %w", err)
	}
	defer rows.Close()

	installments := []models.Installment{}
	for rows.Next() {
		i, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning installment: %w", err)
		}
		installments = append(installments, i)
	}
	return installments, rows.Err()
}

// GetInstallment returns a single installment by id.
func (s *Store) GetInstallment(ctx context.Context, id string) (models.Installment, error) {
	i, err := scanInstallment(s.db.QueryRowContext(ctx, installmentSelectQuery+" WHERE i.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Installment{}, ErrNotFound
	}
	return i, err
}

// SaveInstallment upserts an installment by id.
func (s *Store) SaveInstallment(ctx context.Context, i models.Installment) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO installments
		(id, name, client_id, tax_id, installment_count, current_installment, due_day, first_due_date,
		weekend_rule, auto_generate, recurrence, recurrence_interval, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		name = excluded.name, client_id = excluded.client_id, tax_id = excluded.tax_id,
		installment_count = excluded.installment_count, current_installment = excluded.current_installment,
		due_day = excluded.due_day, first_due_date = excluded.first_due_date,
		weekend_rule = excluded.weekend_rule, auto_generate = excluded.auto_generate,
		recurrence = excluded.recurrence, recurrence_interval = excluded.recurrence_interval,
		status = excluded.status`,
		i.ID, i.Name, i.ClientID, i.TaxID, i.InstallmentCount, i.CurrentInstallment, i.DueDay, i.FirstDueDate,
		i.WeekendRule, i.AutoGenerate, i.Recurrence, i.RecurrenceInterval, i.Status, i.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving installment %s: %w", i.ID, err)
	}
	return nil
}

// DeleteInstallment removes an installment.
func (s *Store) DeleteInstallment(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM installments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting installment %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
