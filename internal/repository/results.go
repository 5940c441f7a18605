package repository

import (
	"context"
	"fmt"

	"github.com/danielbohnn/quizcode/internal/models"
)

type ResultsR struct {
	db QueryI
}

func NewResultsRepository(db QueryI) *ResultsR {
	return &ResultsR{db: db}
}

func (r *ResultsR) Append(ctx context.Context, userID int64, score int) error {
	query := r.db.Rebind(`INSERT INTO results (user_id, score) VALUES (?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, userID, score); err != nil {
		return fmt.Errorf("failed to append result for user %d: %w", userID, err)
	}

	return nil
}

// StatsFor aggregates the user's result history. COALESCE pins every field to
// zero when there are no rows, which is the documented empty-history contract.
func (r *ResultsR) StatsFor(ctx context.Context, userID int64) (models.Statistics, error) {
	query := r.db.Rebind(`SELECT
		COUNT(*) AS total_count,
		COALESCE(AVG(score), 0) AS mean_score,
		COALESCE(MAX(score), 0) AS best_score,
		COALESCE(MIN(score), 0) AS worst_score
	FROM results
	WHERE user_id = ?`)

	var stats models.Statistics
	if err := r.db.GetContext(ctx, &stats, query, userID); err != nil {
		return models.Statistics{}, fmt.Errorf("failed to get result stats for user %d: %w", userID, err)
	}

	return stats, nil
}
