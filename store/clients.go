package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fiscaldesk/portal/models"
)

const clientSelectQuery = `SELECT id, name, document, email, status, created_at FROM clients`

func scanClient(s scanner) (models.Client, error) {
	var c models.Client
	err := s.Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Status, &c.CreatedAt)
	return c, err
}

// ListClients returns all clients, newest first.
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := s.db.QueryContext(ctx, clientSelectQuery+" ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// GetClient returns a single client by id.
func (s *Store) GetClient(ctx context.Context, id string) (models.Client, error) {
	c, err := scanClient(s.db.QueryRowContext(ctx, clientSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, ErrNotFound
	}
	return c, err
}

// SaveClient upserts a client by id.
func (s *Store) SaveClient(ctx context.Context, c models.Client) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO clients (id, name, document, email, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		name = excluded.name, document = excluded.document, email = excluded.email, status = excluded.status`,
		c.ID, c.Name, c.Document, c.Email, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving client %s: %w", c.ID, err)
	}
	return nil
}

// DeleteClient removes a client and, through the schema cascade, its
// obligations and installments.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting client %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
