package service

import (
	"context"
	"errors"

	"github.com/danielbohnn/quizcode/internal/models"
	"go.uber.org/zap"
)

// Rank tiers derived from percentage-correct. Lower bounds are inclusive:
// exactly 80 is Senior, exactly 60 is Mid.
const (
	RankSenior = "Senior"
	RankMid    = "Mid"
	RankJunior = "Junior"
)

var ErrInvalidScore = errors.New("score must not be negative")

type ResultRI interface {
	Append(ctx context.Context, userID int64, score int) error
	StatsFor(ctx context.Context, userID int64) (models.Statistics, error)
}

type StatsS struct {
	repo ResultRI
	log  *zap.Logger
}

func NewStatsService(repo ResultRI, log *zap.Logger) *StatsS {
	return &StatsS{
		repo: repo,
		log:  log,
	}
}

// Record appends one immutable result row. There is no update or delete path.
func (s *StatsS) Record(ctx context.Context, userID int64, score int) error {
	if score < 0 {
		return ErrInvalidScore
	}

	if err := s.repo.Append(ctx, userID, score); err != nil {
		s.log.Error("failed to record result", zap.Int64("user_id", userID), zap.Int("score", score), zap.Error(err))
		return err
	}

	return nil
}

// Aggregate computes the user's statistics on demand. A user with no results
// gets all-zero statistics, never an error.
func (s *StatsS) Aggregate(ctx context.Context, userID int64) (models.Statistics, error) {
	stats, err := s.repo.StatsFor(ctx, userID)
	if err != nil {
		s.log.Error("failed to aggregate results", zap.Int64("user_id", userID), zap.Error(err))
		return models.Statistics{}, err
	}

	return stats, nil
}

// Rank classifies a percentage into a performance tier.
func Rank(percentage float64) string {
	switch {
	case percentage >= 80:
		return RankSenior
	case percentage >= 60:
		return RankMid
	default:
		return RankJunior
	}
}
