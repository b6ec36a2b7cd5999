package db

import (
	"context"
	"database/sql"
)

// uid is store-assigned: the identity column is the only allocator, so two
// concurrent registrations can never collide on id. Usernames are unique,
// deleted accounts keep their row (soft delete), ids are never reused.
const accountsMigration = `
CREATE TABLE IF NOT EXISTS users (
    uid bigint PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
    username varchar(50) NOT NULL,
    password text NOT NULL,
    nickname varchar(100) NOT NULL,
    avatar text NOT NULL,
    description text NOT NULL DEFAULT '',
    exp integer NOT NULL DEFAULT 0,
    state smallint NOT NULL DEFAULT 0,
    role smallint NOT NULL DEFAULT 0,
    create_date timestamptz NOT NULL DEFAULT NOW(),
    delete_date timestamptz
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique
ON users (username);
`

func RunAccountsMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, accountsMigration)
	return err
}
