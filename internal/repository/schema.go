package repository

import (
	"database/sql"
	"fmt"
)

// The unique constraint on identification is the authoritative guard against
// two concurrent registrations racing past the service-level existence check;
// any violation it reports is mapped back to the same duplicate error the
// pre-check uses. Email uniqueness is enforced only here.
const membersSchema = `
CREATE TABLE IF NOT EXISTS members (
	id                  VARCHAR(32)  PRIMARY KEY,
	identification      VARCHAR(13)  NOT NULL,
	identification_type VARCHAR(12)  NOT NULL,
	names               VARCHAR(100) NOT NULL,
	surnames            VARCHAR(100) NOT NULL,
	email               VARCHAR(100),
	phone               VARCHAR(10),
	address             VARCHAR(200),
	active              BOOLEAN      NOT NULL DEFAULT TRUE,
	created_at          TIMESTAMPTZ  NOT NULL,
	updated_at          TIMESTAMPTZ  NOT NULL,
	CONSTRAINT members_identification_key UNIQUE (identification),
	CONSTRAINT members_email_key UNIQUE (email)
)`

// EnsureSchema provisions the members table idempotently. Called once at
// startup and by the seed command.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(membersSchema); err != nil {
		return fmt.Errorf("failed to ensure members schema: %w", err)
	}
	return nil
}
