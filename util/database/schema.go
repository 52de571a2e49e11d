package database

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL,
	CONSTRAINT users_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS item_requests (
	id           BIGSERIAL PRIMARY KEY,
	description  TEXT NOT NULL,
	requester_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	created      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS items (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	available   BOOLEAN NOT NULL,
	owner_id    BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	request_id  BIGINT REFERENCES item_requests (id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS bookings (
	id         BIGSERIAL PRIMARY KEY,
	start_date TIMESTAMPTZ NOT NULL,
	end_date   TIMESTAMPTZ NOT NULL,
	item_id    BIGINT NOT NULL REFERENCES items (id) ON DELETE CASCADE,
	booker_id  BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	status     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS comments (
	id        BIGSERIAL PRIMARY KEY,
	text      TEXT NOT NULL,
	item_id   BIGINT NOT NULL REFERENCES items (id) ON DELETE CASCADE,
	author_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	created   TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the tables on startup. Statements are idempotent,
// so a restart against an initialized database is a no-op.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, schema)
	return err
}
