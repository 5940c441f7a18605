package service

import (
	"context"
	"errors"
	"testing"

	"github.com/danielbohnn/quizcode/internal/models"
	mock_service "github.com/danielbohnn/quizcode/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuizServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *QuizS {
	t.Helper()

	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewQuizService(repo, zap.NewNop())
}

func questionBank() []models.Question {
	return []models.Question{
		{ID: 1, Text: "q1", Correct: "A", Tier: models.TierBasic},
		{ID: 2, Text: "q2", Correct: "B", Tier: models.TierBasic},
		{ID: 3, Text: "q3", Correct: "C", Tier: models.TierIntermediate},
		{ID: 4, Text: "q4", Correct: "D", Tier: models.TierAdvanced},
	}
}

func TestQuizS_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tier     string
		count    int
		f        func(*mock_service.MockRepositoryI)
		wantLen  int
		wantErr  error
		wantTier string
	}{
		{
			name:  "success: random from full bank",
			tier:  "",
			count: 2,
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().All(gomock.Any()).Return(questionBank(), nil)
			},
			wantLen: 2,
		},
		{
			name:  "success: tier filter",
			tier:  models.TierBasic,
			count: 10,
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByTier(gomock.Any(), models.TierBasic).Return(questionBank()[:2], nil)
			},
			wantLen:  2,
			wantTier: models.TierBasic,
		},
		{
			name:  "success: bank smaller than requested",
			tier:  "",
			count: 10,
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().All(gomock.Any()).Return(questionBank(), nil)
			},
			wantLen: 4,
		},
		{
			name:  "success: zero count falls back to default",
			tier:  "",
			count: 0,
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().All(gomock.Any()).Return(questionBank(), nil)
			},
			wantLen: 4,
		},
		{
			name:    "error: unknown tier",
			tier:    "expert",
			count:   10,
			wantErr: ErrUnknownTier,
		},
		{
			name:  "error: repository failure",
			tier:  "",
			count: 10,
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().All(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := newQuizServiceMock(t, ctrl, tt.f)

			got, err := service.Generate(context.Background(), tt.tier, tt.count)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrUnknownTier) {
					assert.ErrorIs(t, err, ErrUnknownTier)
				}
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)

			seen := make(map[int64]bool, len(got))
			for _, question := range got {
				assert.False(t, seen[question.ID], "question %d sampled twice", question.ID)
				seen[question.ID] = true
				if tt.wantTier != "" {
					assert.Equal(t, tt.wantTier, question.Tier)
				}
			}
		})
	}
}

func TestQuizS_Render(t *testing.T) {
	t.Parallel()

	service := NewQuizService(nil, zap.NewNop())
	questions := questionBank()

	hidden := service.Render(questions, false)
	require.Len(t, hidden, len(questions))
	for _, view := range hidden {
		assert.Empty(t, view.Correct)
	}

	revealed := service.Render(questions, true)
	require.Len(t, revealed, len(questions))
	for i, view := range revealed {
		assert.Equal(t, questions[i].Correct, view.Correct)
		assert.Equal(t, questions[i].ID, view.ID)
	}
}

func TestQuizS_Score(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		answers     []models.SubmittedAnswer
		wantCorrect int
		wantTotal   int
	}{
		{
			name: "all correct",
			answers: []models.SubmittedAnswer{
				{QuestionID: 1, Answer: "A"},
				{QuestionID: 2, Answer: "B"},
				{QuestionID: 3, Answer: "C"},
				{QuestionID: 4, Answer: "D"},
			},
			wantCorrect: 4,
			wantTotal:   4,
		},
		{
			name: "case and whitespace normalized",
			answers: []models.SubmittedAnswer{
				{QuestionID: 1, Answer: " a "},
				{QuestionID: 2, Answer: "b"},
			},
			wantCorrect: 2,
			wantTotal:   4,
		},
		{
			name: "order independent",
			answers: []models.SubmittedAnswer{
				{QuestionID: 4, Answer: "D"},
				{QuestionID: 1, Answer: "A"},
			},
			wantCorrect: 2,
			wantTotal:   4,
		},
		{
			name: "stale ids ignored",
			answers: []models.SubmittedAnswer{
				{QuestionID: 99, Answer: "A"},
				{QuestionID: 1, Answer: "A"},
			},
			wantCorrect: 1,
			wantTotal:   4,
		},
		{
			name: "duplicate answers score once, first wins",
			answers: []models.SubmittedAnswer{
				{QuestionID: 1, Answer: "B"},
				{QuestionID: 1, Answer: "A"},
			},
			wantCorrect: 0,
			wantTotal:   4,
		},
		{
			name: "unanswered questions count as wrong",
			answers: []models.SubmittedAnswer{
				{QuestionID: 1, Answer: "A"},
			},
			wantCorrect: 1,
			wantTotal:   4,
		},
		{
			name:        "empty submission",
			answers:     nil,
			wantCorrect: 0,
			wantTotal:   4,
		},
	}

	service := NewQuizService(nil, zap.NewNop())

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			correct, total := service.Score(questionBank(), tt.answers)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestQuizS_ScoreSubmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		answers     []models.SubmittedAnswer
		f           func(*mock_service.MockRepositoryI)
		wantCorrect int
		wantTotal   int
		wantErr     error
	}{
		{
			name: "success",
			answers: []models.SubmittedAnswer{
				{QuestionID: 1, Answer: "A"},
				{QuestionID: 2, Answer: "C"},
			},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{1, 2}).Return(questionBank()[:2], nil)
			},
			wantCorrect: 1,
			wantTotal:   2,
		},
		{
			name: "ids unknown to the store drop out of the total",
			answers: []models.SubmittedAnswer{
				{QuestionID: 1, Answer: "A"},
				{QuestionID: 99, Answer: "A"},
			},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{1, 99}).Return(questionBank()[:1], nil)
			},
			wantCorrect: 1,
			wantTotal:   1,
		},
		{
			name:    "error: empty submission",
			answers: nil,
			wantErr: ErrEmptySubmission,
		},
		{
			name: "error: non-positive question id",
			answers: []models.SubmittedAnswer{
				{QuestionID: 0, Answer: "A"},
			},
			wantErr: ErrEmptySubmission,
		},
		{
			name: "error: repository failure",
			answers: []models.SubmittedAnswer{
				{QuestionID: 1, Answer: "A"},
			},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{1}).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := newQuizServiceMock(t, ctrl, tt.f)

			correct, total, err := service.ScoreSubmission(context.Background(), tt.answers)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrEmptySubmission) {
					assert.ErrorIs(t, err, ErrEmptySubmission)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestQuizS_CheckAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		questionID  int64
		answer      string
		f           func(*mock_service.MockRepositoryI)
		wantCorrect bool
		wantKey     string
		wantErr     error
	}{
		{
			name:       "correct answer",
			questionID: 1,
			answer:     " a ",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{1}).Return(questionBank()[:1], nil)
			},
			wantCorrect: true,
			wantKey:     "A",
		},
		{
			name:       "wrong answer still reveals the key",
			questionID: 1,
			answer:     "D",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{1}).Return(questionBank()[:1], nil)
			},
			wantCorrect: false,
			wantKey:     "A",
		},
		{
			name:       "error: question not found",
			questionID: 99,
			answer:     "A",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{99}).Return(nil, nil)
			},
			wantErr: ErrQuestionNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := newQuizServiceMock(t, ctrl, tt.f)

			correct, key, err := service.CheckAnswer(context.Background(), tt.questionID, tt.answer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 100.0, Percentage(10, 10))
	assert.Equal(t, 50.0, Percentage(5, 10))
	assert.InDelta(t, 33.33, Percentage(1, 3), 0.01)
}
