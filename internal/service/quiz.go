package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/danielbohnn/quizcode/internal/models"
	"go.uber.org/zap"
)

// DefaultSessionSize is how many questions a session holds unless the caller
// asks for a different count.
const DefaultSessionSize = 10

var (
	ErrUnknownTier      = errors.New("unknown difficulty tier")
	ErrQuestionNotFound = errors.New("question not found")
	ErrEmptySubmission  = errors.New("submission contains no answers")
)

type QuestionRI interface {
	All(ctx context.Context) ([]models.Question, error)
	ByTier(ctx context.Context, tier string) ([]models.Question, error)
	ByIDs(ctx context.Context, ids []int64) ([]models.Question, error)
}

type QuizS struct {
	repo QuestionRI
	log  *zap.Logger
}

func NewQuizService(repo QuestionRI, log *zap.Logger) *QuizS {
	return &QuizS{
		repo: repo,
		log:  log,
	}
}

// Generate samples count questions uniformly at random without replacement,
// restricted to one tier when tier is non-empty. When the bank holds fewer
// matching questions than requested the session is simply shorter; callers
// display "X/len(session)", so a short session is safe downstream.
func (q *QuizS) Generate(ctx context.Context, tier string, count int) ([]models.Question, error) {
	if count <= 0 {
		count = DefaultSessionSize
	}

	var (
		bank []models.Question
		err  error
	)

	if tier == "" {
		bank, err = q.repo.All(ctx)
	} else {
		if !models.ValidTier(tier) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
		}
		bank, err = q.repo.ByTier(ctx, tier)
	}
	if err != nil {
		q.log.Error("failed to load question bank", zap.String("tier", tier), zap.Error(err))
		return nil, err
	}

	session := make([]models.Question, len(bank))
	copy(session, bank)

	rand.Shuffle(len(session), func(i, j int) {
		session[i], session[j] = session[j], session[i]
	})

	if len(session) > count {
		session = session[:count]
	}

	if len(session) < count {
		q.log.Warn("question bank smaller than requested session",
			zap.String("tier", tier),
			zap.Int("requested", count),
			zap.Int("got", len(session)))
	}

	return session, nil
}

// Render projects a session for presentation. With reveal false the answer
// key is stripped; with reveal true it is included for local checking.
func (q *QuizS) Render(questions []models.Question, reveal bool) []models.QuestionView {
	views := make([]models.QuestionView, 0, len(questions))
	for _, question := range questions {
		view := models.QuestionView{
			ID:      question.ID,
			Text:    question.Text,
			OptionA: question.OptionA,
			OptionB: question.OptionB,
			OptionC: question.OptionC,
			OptionD: question.OptionD,
			Tier:    question.Tier,
		}
		if reveal {
			view.Correct = question.Correct
		}
		views = append(views, view)
	}
	return views
}

// Score compares submitted answers against the retained answer key of the
// given session. Answers referencing ids outside the session are ignored, a
// question answered more than once is scored on its first answer, and total
// is always the session size, so unanswered questions count as wrong.
func (q *QuizS) Score(questions []models.Question, answers []models.SubmittedAnswer) (int, int) {
	keys := make(map[int64]string, len(questions))
	for _, question := range questions {
		keys[question.ID] = question.Correct
	}

	correct := 0
	scored := make(map[int64]bool, len(answers))

	for _, answer := range answers {
		key, ok := keys[answer.QuestionID]
		if !ok || scored[answer.QuestionID] {
			continue
		}
		scored[answer.QuestionID] = true

		if answerMatches(answer.Answer, key) {
			correct++
		}
	}

	return correct, len(questions)
}

// ScoreSubmission is the stateless scoring path: the session is materialized
// from the submitted question ids, so ids unknown to the store drop out of
// both the score and the total.
func (q *QuizS) ScoreSubmission(ctx context.Context, answers []models.SubmittedAnswer) (int, int, error) {
	if len(answers) == 0 {
		return 0, 0, ErrEmptySubmission
	}

	ids := make([]int64, 0, len(answers))
	seen := make(map[int64]bool, len(answers))
	for _, answer := range answers {
		if answer.QuestionID <= 0 {
			return 0, 0, fmt.Errorf("%w: invalid question id %d", ErrEmptySubmission, answer.QuestionID)
		}
		if !seen[answer.QuestionID] {
			seen[answer.QuestionID] = true
			ids = append(ids, answer.QuestionID)
		}
	}

	questions, err := q.repo.ByIDs(ctx, ids)
	if err != nil {
		q.log.Error("failed to load submitted questions", zap.Int("count", len(ids)), zap.Error(err))
		return 0, 0, err
	}

	correct, total := q.Score(questions, answers)
	return correct, total, nil
}

// CheckAnswer verifies one answer against the stored key and reports the
// correct label alongside, for adapters that reveal it after each question.
func (q *QuizS) CheckAnswer(ctx context.Context, questionID int64, answer string) (bool, string, error) {
	questions, err := q.repo.ByIDs(ctx, []int64{questionID})
	if err != nil {
		q.log.Error("failed to load question", zap.Int64("question_id", questionID), zap.Error(err))
		return false, "", err
	}
	if len(questions) == 0 {
		return false, "", ErrQuestionNotFound
	}

	key := questions[0].Correct
	return answerMatches(answer, key), normalizeLabel(key), nil
}

// Percentage converts a score into [0,100]. A zero total yields zero rather
// than a division fault.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// answerMatches compares a submitted option label against the stored key.
// Both sides are trimmed and upper-cased; beyond that the match is exact.
func answerMatches(submitted, correct string) bool {
	label := normalizeLabel(submitted)
	return label != "" && label == normalizeLabel(correct)
}

func normalizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}
