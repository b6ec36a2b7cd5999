package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pzhuhenong/teriteri-backend/internal/db"
)

// PostgresStore implements Store over the users table. The uid column is an
// identity column, so id allocation is atomic in the database rather than a
// read-then-insert in application code.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const accountColumns = `uid, username, password, nickname, avatar, description, exp, state, role, create_date, delete_date`

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*Account, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM users
		WHERE username = $1
	`, username)
	return scanAccount(row)
}

func (s *PostgresStore) FindByUID(ctx context.Context, uid int64) (*Account, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM users
		WHERE uid = $1
	`, uid)
	return scanAccount(row)
}

func (s *PostgresStore) FindMaxUID(ctx context.Context) (int64, error) {
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT MAX(uid) FROM users
	`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("query max uid: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return max.Int64, nil
}

func (s *PostgresStore) Insert(ctx context.Context, a *Account) (int64, error) {
	var uid int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password, nickname, avatar, description, exp, state, role, create_date, delete_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING uid
	`,
		a.Username,
		a.Password,
		a.Nickname,
		a.Avatar,
		a.Description,
		a.Exp,
		a.State,
		a.Role,
		a.CreateDate,
		a.DeleteDate,
	).Scan(&uid)
	if err != nil {
		return 0, fmt.Errorf("insert account: %w", err)
	}
	return uid, nil
}

func scanAccount(row *sql.Row) (*Account, error) {
	var a Account
	var deleteDate sql.NullTime
	err := row.Scan(
		&a.UID,
		&a.Username,
		&a.Password,
		&a.Nickname,
		&a.Avatar,
		&a.Description,
		&a.Exp,
		&a.State,
		&a.Role,
		&a.CreateDate,
		&deleteDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}
	if deleteDate.Valid {
		a.DeleteDate = &deleteDate.Time
	}
	return &a, nil
}
