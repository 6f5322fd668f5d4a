package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migrate creates the funnel schema. Statements are idempotent so the service
// can run them on every boot.
//
// Two invariants live here rather than in application code:
//   - leads.email and customers.email are unique indexes, so concurrent
//     captures/registrations for the same email cannot both insert;
//   - trials_one_active is a partial unique index allowing at most one
//     active trial row per lead.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS leads (
			id         UUID PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			company    TEXT,
			phone      TEXT,
			source     TEXT NOT NULL DEFAULT 'website',
			campaign   TEXT,
			status     TEXT NOT NULL DEFAULT 'new',
			score      INTEGER NOT NULL DEFAULT 0,
			notes      TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS trials (
			id            UUID PRIMARY KEY,
			lead_id       UUID NOT NULL REFERENCES leads(id),
			plan          TEXT NOT NULL,
			start_date    TIMESTAMPTZ NOT NULL,
			end_date      TIMESTAMPTZ NOT NULL,
			status        TEXT NOT NULL DEFAULT 'active',
			usage_metrics JSONB NOT NULL DEFAULT '{}',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS trials_one_active
			ON trials (lead_id) WHERE status = 'active'`,
		`CREATE TABLE IF NOT EXISTS conversions (
			id                 UUID PRIMARY KEY,
			lead_id            UUID NOT NULL REFERENCES leads(id),
			trial_id           UUID REFERENCES trials(id),
			conversion_type    TEXT NOT NULL,
			amount_cents       BIGINT NOT NULL CHECK (amount_cents >= 0),
			currency           TEXT NOT NULL DEFAULT 'usd',
			external_charge_id TEXT,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id                  UUID PRIMARY KEY,
			email               TEXT NOT NULL UNIQUE,
			name                TEXT NOT NULL,
			password_hash       TEXT NOT NULL,
			phone               TEXT,
			company             TEXT,
			gateway_customer_id TEXT,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token       TEXT PRIMARY KEY,
			customer_id UUID NOT NULL REFERENCES customers(id),
			issued_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at  TIMESTAMPTZ NOT NULL,
			revoked     BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS sales_activities (
			id            UUID PRIMARY KEY,
			lead_id       UUID NOT NULL REFERENCES leads(id),
			activity_type TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT '',
			outcome       TEXT,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS sales_activities_lead_time
			ON sales_activities (lead_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	log.Println("database schema ready")
	return nil
}
