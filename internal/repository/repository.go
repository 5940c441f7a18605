package repository

import (
	"context"
	"database/sql"
)

// QueryI is the slice of *sqlx.DB the repositories use. Rebind lets queries
// be written with ? placeholders and still run when the configured driver is
// postgres.
type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type Repository struct {
	*QuestionsR
	*UsersR
	*ResultsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		QuestionsR: NewQuestionsRepository(db),
		UsersR:     NewUsersRepository(db),
		ResultsR:   NewResultsRepository(db),
	}
}
