package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielbohnn/quizcode/internal/models"
	"github.com/danielbohnn/quizcode/internal/service"
	mock_service "github.com/danielbohnn/quizcode/internal/service/mock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *fiber.App {
	t.Helper()

	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	services := service.InitServices(repo, zap.NewNop())
	handlers := NewQuizHandlers(services, 10, zap.NewNop())

	return NewApp(handlers)
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	return resp.StatusCode, decoded
}

func TestQuizHandlers_HandleRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       interface{}
		f          func(*mock_service.MockRepositoryI)
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]string{"username": "daniel", "password": "secret", "confirm_password": "secret"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().InsertUnique(gomock.Any(), "daniel", "secret").Return(true, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "username taken",
			body: map[string]string{"username": "daniel", "password": "secret", "confirm_password": "secret"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().InsertUnique(gomock.Any(), "daniel", "secret").Return(false, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "passwords do not match",
			body:       map[string]string{"username": "daniel", "password": "secret", "confirm_password": "other"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing fields",
			body:       map[string]string{"username": "daniel"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			app := newTestApp(t, ctrl, tt.f)

			status, body := doJSON(t, app, http.MethodPost, "/api/register", tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus == http.StatusOK, body["success"])
		})
	}
}

func TestQuizHandlers_HandleLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       interface{}
		f          func(*mock_service.MockRepositoryI)
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]string{"username": "daniel", "password": "secret"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().FindByCredentials(gomock.Any(), "daniel", "secret").Return(int64(42), true, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong credentials",
			body: map[string]string{"username": "daniel", "password": "nope"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().FindByCredentials(gomock.Any(), "daniel", "nope").Return(int64(0), false, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       map[string]string{"username": "daniel"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			app := newTestApp(t, ctrl, tt.f)

			status, body := doJSON(t, app, http.MethodPost, "/api/login", tt.body)
			assert.Equal(t, tt.wantStatus, status)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, float64(42), body["user_id"])
			}
		})
	}
}

func TestQuizHandlers_HandleGenerateQuiz(t *testing.T) {
	t.Parallel()

	bank := []models.Question{
		{ID: 1, Text: "q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Correct: "A", Tier: models.TierBasic},
		{ID: 2, Text: "q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Correct: "B", Tier: models.TierBasic},
	}

	t.Run("answer key never leaves the server", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().All(gomock.Any()).Return(bank, nil)
		})

		status, body := doJSON(t, app, http.MethodPost, "/api/quiz/generate", map[string]interface{}{"count": 2})
		require.Equal(t, http.StatusOK, status)

		quiz, ok := body["quiz"].([]interface{})
		require.True(t, ok)
		require.Len(t, quiz, 2)

		for _, item := range quiz {
			question := item.(map[string]interface{})
			assert.NotContains(t, question, "correct")
			assert.Contains(t, question, "text")
			assert.Contains(t, question, "option_a")
		}
	})

	t.Run("empty body falls back to defaults", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().All(gomock.Any()).Return(bank, nil)
		})

		status, _ := doJSON(t, app, http.MethodPost, "/api/quiz/generate", nil)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("tier filter", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().ByTier(gomock.Any(), models.TierBasic).Return(bank, nil)
		})

		status, _ := doJSON(t, app, http.MethodPost, "/api/quiz/generate", map[string]string{"tier": "basic"})
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("unknown tier", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, nil)

		status, _ := doJSON(t, app, http.MethodPost, "/api/quiz/generate", map[string]string{"tier": "expert"})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestQuizHandlers_HandleCheckAnswer(t *testing.T) {
	t.Parallel()

	question := models.Question{ID: 1, Text: "q1", Correct: "A", Tier: models.TierBasic}

	tests := []struct {
		name       string
		body       interface{}
		f          func(*mock_service.MockRepositoryI)
		wantStatus int
		wantRight  bool
	}{
		{
			name: "correct answer",
			body: map[string]interface{}{"question_id": 1, "answer": "a"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{1}).Return([]models.Question{question}, nil)
			},
			wantStatus: http.StatusOK,
			wantRight:  true,
		},
		{
			name: "wrong answer",
			body: map[string]interface{}{"question_id": 1, "answer": "D"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{1}).Return([]models.Question{question}, nil)
			},
			wantStatus: http.StatusOK,
			wantRight:  false,
		},
		{
			name: "question not found",
			body: map[string]interface{}{"question_id": 99, "answer": "A"},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().ByIDs(gomock.Any(), []int64{99}).Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing answer",
			body:       map[string]interface{}{"question_id": 1},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			app := newTestApp(t, ctrl, tt.f)

			status, body := doJSON(t, app, http.MethodPost, "/api/quiz/check", tt.body)
			assert.Equal(t, tt.wantStatus, status)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantRight, body["correct"])
				assert.Equal(t, "A", body["correct_answer"])
			}
		})
	}
}

func TestQuizHandlers_HandleSubmitQuiz(t *testing.T) {
	t.Parallel()

	bank := []models.Question{
		{ID: 1, Correct: "A", Tier: models.TierBasic},
		{ID: 2, Correct: "B", Tier: models.TierBasic},
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().ByIDs(gomock.Any(), []int64{1, 2}).Return(bank, nil)
			mri.EXPECT().Append(gomock.Any(), int64(7), 2).Return(nil)
		})

		status, body := doJSON(t, app, http.MethodPost, "/api/quiz/submit", map[string]interface{}{
			"user_id": 7,
			"answers": []map[string]interface{}{
				{"question_id": 1, "answer": "A"},
				{"question_id": 2, "answer": "b"},
			},
		})

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(2), body["correct"])
		assert.Equal(t, float64(2), body["total"])
		assert.Equal(t, float64(100), body["percentage"])
		assert.Equal(t, service.RankSenior, body["rank"])
	})

	t.Run("partial score maps to rank", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().ByIDs(gomock.Any(), []int64{1, 2}).Return(bank, nil)
			mri.EXPECT().Append(gomock.Any(), int64(7), 1).Return(nil)
		})

		status, body := doJSON(t, app, http.MethodPost, "/api/quiz/submit", map[string]interface{}{
			"user_id": 7,
			"answers": []map[string]interface{}{
				{"question_id": 1, "answer": "A"},
				{"question_id": 2, "answer": "D"},
			},
		})

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(50), body["percentage"])
		assert.Equal(t, service.RankJunior, body["rank"])
	})

	t.Run("malformed submission records nothing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, nil)

		status, _ := doJSON(t, app, http.MethodPost, "/api/quiz/submit", map[string]interface{}{
			"answers": []map[string]interface{}{
				{"question_id": 1, "answer": "A"},
			},
		})

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("empty answers records nothing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, nil)

		status, _ := doJSON(t, app, http.MethodPost, "/api/quiz/submit", map[string]interface{}{
			"user_id": 7,
			"answers": []map[string]interface{}{},
		})

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("scoring failure records nothing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := newTestApp(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().ByIDs(gomock.Any(), []int64{1}).Return(nil, errors.New("db down"))
		})

		status, _ := doJSON(t, app, http.MethodPost, "/api/quiz/submit", map[string]interface{}{
			"user_id": 7,
			"answers": []map[string]interface{}{
				{"question_id": 1, "answer": "A"},
			},
		})

		assert.Equal(t, http.StatusInternalServerError, status)
	})
}

func TestQuizHandlers_HandleGetStatistics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		f          func(*mock_service.MockRepositoryI)
		wantStatus int
	}{
		{
			name:   "success",
			target: "/api/statistics?user_id=7",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().StatsFor(gomock.Any(), int64(7)).Return(models.Statistics{
					TotalCount: 2,
					Mean:       5.5,
					Best:       8,
					Worst:      3,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing user_id",
			target:     "/api/statistics",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric user_id",
			target:     "/api/statistics?user_id=abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			app := newTestApp(t, ctrl, tt.f)

			status, body := doJSON(t, app, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.wantStatus, status)

			if tt.wantStatus == http.StatusOK {
				stats, ok := body["statistics"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, float64(2), stats["total_count"])
			}
		})
	}
}
