package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate runs all table creation statements. Safe to call multiple times
// due to IF NOT EXISTS clauses.
func Migrate(db *sql.DB) error {
	slog.Info("running database migrations")

	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}

	slog.Info("database migrations complete")
	return nil
}

var migrations = []string{
	// Clients of the portfolio
	`CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		document TEXT,
		email TEXT,
		status TEXT NOT NULL DEFAULT 'active' CHECK(status IN ('active', 'inactive')),
		created_at TEXT NOT NULL
	)`,

	// Periodic tax charges; the YYYY-MM prefix of created_at is the period the
	// record was generated for
	`CREATE TABLE IF NOT EXISTS taxes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		due_day INTEGER CHECK(due_day BETWEEN 1 AND 31),
		created_at TEXT NOT NULL
	)`,

	// Fiscal obligations; rows with parent_obligation_id are per-period
	// instances spawned from a template row
	`CREATE TABLE IF NOT EXISTS obligations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		client_id TEXT NOT NULL,
		tax_id TEXT,
		due_day INTEGER NOT NULL CHECK(due_day BETWEEN 1 AND 31),
		due_month INTEGER CHECK(due_month BETWEEN 1 AND 12),
		frequency TEXT NOT NULL DEFAULT 'monthly' CHECK(frequency IN ('monthly', 'quarterly', 'annual', 'custom')),
		weekend_rule TEXT NOT NULL DEFAULT 'postpone' CHECK(weekend_rule IN ('postpone', 'anticipate', 'keep')),
		status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending', 'completed', 'overdue')),
		auto_generate INTEGER NOT NULL DEFAULT 0,
		parent_obligation_id TEXT,
		generated_for TEXT,
		created_at TEXT NOT NULL,
		completed_at TEXT,
		FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE,
		FOREIGN KEY (tax_id) REFERENCES taxes(id) ON DELETE SET NULL,
		FOREIGN KEY (parent_obligation_id) REFERENCES obligations(id) ON DELETE CASCADE
	)`,

	// Installment plans; current_installment advances one step per generation
	`CREATE TABLE IF NOT EXISTS installments (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		client_id TEXT NOT NULL,
		tax_id TEXT,
		installment_count INTEGER NOT NULL CHECK(installment_count >= 1),
		current_installment INTEGER NOT NULL CHECK(current_installment BETWEEN 1 AND installment_count),
		due_day INTEGER NOT NULL CHECK(due_day BETWEEN 1 AND 31),
		first_due_date TEXT,
		weekend_rule TEXT NOT NULL DEFAULT 'postpone' CHECK(weekend_rule IN ('postpone', 'anticipate', 'keep')),
		auto_generate INTEGER NOT NULL DEFAULT 0,
		recurrence TEXT NOT NULL DEFAULT 'monthly' CHECK(recurrence IN ('monthly', 'quarterly', 'annual', 'custom')),
		recurrence_interval INTEGER NOT NULL DEFAULT 1,
		status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending', 'completed', 'overdue')),
		created_at TEXT NOT NULL,
		FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE,
		FOREIGN KEY (tax_id) REFERENCES taxes(id) ON DELETE SET NULL
	)`,

	// At most one generated instance per (template, period). Concurrent
	// generation runs that both pass the existence check serialize here.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_obligations_parent_period
		ON obligations(parent_obligation_id, generated_for)
		WHERE parent_obligation_id IS NOT NULL`,

	// At most one tax per (name, period), the period being the YYYY-MM prefix
	// of created_at. Same role as idx_obligations_parent_period.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_taxes_name_period
		ON taxes(name, substr(created_at, 1, 7))`,

	// Indexes for common queries
	`CREATE INDEX IF NOT EXISTS idx_obligations_client ON obligations(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_obligations_status ON obligations(status)`,
	`CREATE INDEX IF NOT EXISTS idx_installments_client ON installments(client_id)`,
}
