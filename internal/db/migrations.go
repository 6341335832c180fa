package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Lookup tables owned by the back office. They are created here only so the
// service can boot against an empty database; columns are the subset we read.
var lookupStatements = []string{
	`CREATE TABLE IF NOT EXISTS statuses (
		id UUID PRIMARY KEY,
		name VARCHAR(64) NOT NULL,
		module VARCHAR(32) NOT NULL,
		color VARCHAR(16) NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY,
		first_name VARCHAR(128) NOT NULL,
		last_name VARCHAR(128) NOT NULL DEFAULT '',
		document_number VARCHAR(64) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		email VARCHAR(128) NOT NULL DEFAULT '',
		status_id UUID REFERENCES statuses(id)
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY,
		plate VARCHAR(32) NOT NULL,
		brand VARCHAR(64) NOT NULL DEFAULT '',
		model VARCHAR(64) NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		status_id UUID REFERENCES statuses(id)
	);`,
}

var contractStatements = []string{
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY,
		driver_id UUID NOT NULL REFERENCES drivers(id),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		start_date DATE NOT NULL,
		end_date DATE,
		type VARCHAR(16) NOT NULL,
		base_price NUMERIC(14,2),
		daily_price NUMERIC(14,2),
		monthly_price NUMERIC(14,2),
		total_amount NUMERIC(14,2),
		deposit NUMERIC(14,2) CHECK (deposit IS NULL OR deposit >= 0),
		penalty_rate NUMERIC(6,4) NOT NULL DEFAULT 0 CHECK (penalty_rate >= 0 AND penalty_rate <= 1),
		allowed_delay_days INTEGER NOT NULL DEFAULT 0 CHECK (allowed_delay_days >= 0),
		automatic_renewal BOOLEAN NOT NULL DEFAULT FALSE,
		status VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
		status_id UUID REFERENCES statuses(id),
		terms TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_by UUID,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CHECK (end_date IS NULL OR start_date <= end_date)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_vehicle_id ON contracts (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_driver_id ON contracts (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts (status);`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		contract_id UUID REFERENCES contracts(id),
		driver_id UUID NOT NULL REFERENCES drivers(id),
		amount NUMERIC(14,2) NOT NULL CHECK (amount > 0),
		type VARCHAR(16) NOT NULL,
		method VARCHAR(32) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		date TIMESTAMP NOT NULL,
		due_date DATE,
		description TEXT NOT NULL DEFAULT '',
		reference VARCHAR(128) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_contract_id ON payments (contract_id);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_driver_id ON payments (driver_id);`,
}

// Range exclusion keeps the no-double-booking invariant even if a writer
// bypasses the scheduling lock.
var postgresStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'ex_contracts_vehicle_range') THEN
			ALTER TABLE contracts ADD CONSTRAINT ex_contracts_vehicle_range
				EXCLUDE USING gist (vehicle_id WITH =, daterange(start_date, end_date, '[]') WITH &&)
				WHERE (status <> 'CANCELLED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'ex_contracts_driver_range') THEN
			ALTER TABLE contracts ADD CONSTRAINT ex_contracts_driver_range
				EXCLUDE USING gist (driver_id WITH =, daterange(start_date, end_date, '[]') WITH &&)
				WHERE (status <> 'CANCELLED');
		END IF;
	END
	$$;`,
}

// Migrate applies the schema. Statements are idempotent so it runs on every
// boot.
func Migrate(db *gorm.DB) error {
	statements := make([]string, 0, len(lookupStatements)+len(contractStatements)+len(postgresStatements))
	statements = append(statements, lookupStatements...)
	statements = append(statements, contractStatements...)
	if db.Dialector.Name() == "postgres" {
		statements = append(statements, postgresStatements...)
	}

	for i, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
