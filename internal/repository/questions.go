package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielbohnn/quizcode/internal/models"
)

type QuestionsR struct {
	db QueryI
}

func NewQuestionsRepository(db QueryI) *QuestionsR {
	return &QuestionsR{db: db}
}

func (q *QuestionsR) All(ctx context.Context) ([]models.Question, error) {
	query := `SELECT id, text, option_a, option_b, option_c, option_d, correct, tier FROM questions`

	var questions []models.Question
	if err := q.db.SelectContext(ctx, &questions, query); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, nil
}

func (q *QuestionsR) ByTier(ctx context.Context, tier string) ([]models.Question, error) {
	query := q.db.Rebind(`SELECT id, text, option_a, option_b, option_c, option_d, correct, tier
		FROM questions
		WHERE tier = ?`)

	var questions []models.Question
	if err := q.db.SelectContext(ctx, &questions, query, tier); err != nil {
		return nil, fmt.Errorf("failed to list questions for tier %q: %w", tier, err)
	}

	return questions, nil
}

func (q *QuestionsR) ByIDs(ctx context.Context, ids []int64) ([]models.Question, error) {
	if len(ids) == 0 {
		return []models.Question{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := q.db.Rebind(fmt.Sprintf(`SELECT id, text, option_a, option_b, option_c, option_d, correct, tier
		FROM questions
		WHERE id IN (%s)`, placeholders))

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	var questions []models.Question
	if err := q.db.SelectContext(ctx, &questions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions by ids: %w", err)
	}

	return questions, nil
}
