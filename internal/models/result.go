package models

import "time"

type Result struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}

// Statistics aggregates one user's result history. All fields are zero when
// the user has no results.
type Statistics struct {
	TotalCount int     `db:"total_count" json:"total_count"`
	Mean       float64 `db:"mean_score" json:"mean"`
	Best       int     `db:"best_score" json:"best"`
	Worst      int     `db:"worst_score" json:"worst"`
}
