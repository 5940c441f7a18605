package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

// InsertUnique persists the username/password pair verbatim. It returns false
// without an error when the username is already taken. The conditional insert
// keeps duplicate detection inside a single statement instead of depending on
// driver-specific constraint errors.
func (u *UsersR) InsertUnique(ctx context.Context, username, password string) (bool, error) {
	query := u.db.Rebind(`INSERT INTO users (username, password)
		SELECT ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM users WHERE username = ?)`)

	res, err := u.db.ExecContext(ctx, query, username, password, username)
	if err != nil {
		return false, fmt.Errorf("failed to insert user %q: %w", username, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}

// FindByCredentials matches both fields verbatim against a single row.
// A missing row is a normal negative result, not an error.
func (u *UsersR) FindByCredentials(ctx context.Context, username, password string) (int64, bool, error) {
	query := u.db.Rebind(`SELECT id FROM users WHERE username = ? AND password = ?`)

	var id int64
	err := u.db.GetContext(ctx, &id, query, username, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to find user %q: %w", username, err)
	}

	return id, true, nil
}
