package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateCapsules, downCreateCapsules)
}

func upCreateCapsules(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE capsules (
		id SERIAL PRIMARY KEY,
		post_id VARCHAR NOT NULL UNIQUE,
		title VARCHAR NOT NULL,
		channel_id VARCHAR NOT NULL,
		reveal_at TIMESTAMPTZ NOT NULL,
		notified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX capsules_due_idx ON capsules (reveal_at) WHERE NOT notified;
	`)
	return err
}

func downCreateCapsules(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE capsules;`)
	return err
}
