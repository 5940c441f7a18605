package httpapi

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/danielbohnn/quizcode/internal/models"
	"github.com/danielbohnn/quizcode/internal/service"
	"github.com/danielbohnn/quizcode/pkg/validator"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type QuizSI interface {
	Generate(ctx context.Context, tier string, count int) ([]models.Question, error)
	Render(questions []models.Question, reveal bool) []models.QuestionView
	ScoreSubmission(ctx context.Context, answers []models.SubmittedAnswer) (int, int, error)
	CheckAnswer(ctx context.Context, questionID int64, answer string) (bool, string, error)
}

type StatsSI interface {
	Record(ctx context.Context, userID int64, score int) error
	Aggregate(ctx context.Context, userID int64) (models.Statistics, error)
}

type AuthSI interface {
	Register(ctx context.Context, username, password string) (bool, error)
	Authenticate(ctx context.Context, username, password string) (int64, error)
}

type ServiceI interface {
	QuizSI
	StatsSI
	AuthSI
}

type QuizHandlers struct {
	service     ServiceI
	sessionSize int
	log         *zap.Logger
}

func NewQuizHandlers(service ServiceI, sessionSize int, log *zap.Logger) *QuizHandlers {
	return &QuizHandlers{
		service:     service,
		sessionSize: sessionSize,
		log:         log,
	}
}

// HandleRegister handles POST /api/register.
func (h *QuizHandlers) HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validator.ValidateStruct(req); err != nil {
		return badRequest(c, "username and password are required")
	}
	if req.Password != req.ConfirmPassword {
		return badRequest(c, "passwords do not match")
	}

	created, err := h.service.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCredentials) {
			return badRequest(c, "username and password are required")
		}
		h.log.Error("register failed", zap.String("username", req.Username), zap.Error(err))
		return internalError(c, "failed to register")
	}
	if !created {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "username already taken",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "registered successfully",
	})
}

// HandleLogin handles POST /api/login.
func (h *QuizHandlers) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validator.ValidateStruct(req); err != nil {
		return badRequest(c, "username and password are required")
	}

	userID, err := h.service.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrEmptyCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "invalid username or password",
			})
		}
		h.log.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		return internalError(c, "failed to log in")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"user_id":  userID,
		"username": req.Username,
	})
}

// HandleGenerateQuiz handles POST /api/quiz/generate. The response carries
// redacted questions only; the answer key stays server-side.
func (h *QuizHandlers) HandleGenerateQuiz(c *fiber.Ctx) error {
	var req generateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}
	if err := validator.ValidateStruct(req); err != nil {
		return badRequest(c, "unknown difficulty tier")
	}

	count := req.Count
	if count <= 0 {
		count = h.sessionSize
	}

	questions, err := h.service.Generate(c.Context(), req.Tier, count)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTier) {
			return badRequest(c, "unknown difficulty tier")
		}
		h.log.Error("generate failed", zap.String("tier", req.Tier), zap.Error(err))
		return internalError(c, "failed to generate quiz")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quiz":    h.service.Render(questions, false),
	})
}

// HandleCheckAnswer handles POST /api/quiz/check: single-question
// verification that reveals the correct label afterwards.
func (h *QuizHandlers) HandleCheckAnswer(c *fiber.Ctx) error {
	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validator.ValidateStruct(req); err != nil {
		return badRequest(c, "question_id and answer are required")
	}

	correct, key, err := h.service.CheckAnswer(c.Context(), req.QuestionID, req.Answer)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "question not found",
			})
		}
		h.log.Error("check answer failed", zap.Int64("question_id", req.QuestionID), zap.Error(err))
		return internalError(c, "failed to check answer")
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"correct":        correct,
		"correct_answer": key,
	})
}

// HandleSubmitQuiz handles POST /api/quiz/submit: scores the submission,
// records the result, and derives the rank. A submission that fails
// validation records nothing.
func (h *QuizHandlers) HandleSubmitQuiz(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validator.ValidateStruct(req); err != nil {
		return badRequest(c, "user_id and answers are required")
	}

	correct, total, err := h.service.ScoreSubmission(c.Context(), req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrEmptySubmission) {
			return badRequest(c, "submission contains no valid answers")
		}
		h.log.Error("submit failed", zap.Int64("user_id", req.UserID), zap.Error(err))
		return internalError(c, "failed to score submission")
	}

	if err := h.service.Record(c.Context(), req.UserID, correct); err != nil {
		h.log.Error("record failed", zap.Int64("user_id", req.UserID), zap.Error(err))
		return internalError(c, "failed to record result")
	}

	percentage := service.Percentage(correct, total)

	return c.JSON(fiber.Map{
		"success":    true,
		"correct":    correct,
		"total":      total,
		"score":      correct,
		"percentage": math.Round(percentage*10) / 10,
		"rank":       service.Rank(percentage),
	})
}

// HandleGetStatistics handles GET /api/statistics?user_id=N.
func (h *QuizHandlers) HandleGetStatistics(c *fiber.Ctx) error {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		return badRequest(c, "user_id query parameter is required")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		return badRequest(c, "user_id must be a positive integer")
	}

	stats, err := h.service.Aggregate(c.Context(), userID)
	if err != nil {
		h.log.Error("statistics failed", zap.Int64("user_id", userID), zap.Error(err))
		return internalError(c, "failed to get statistics")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"statistics": stats,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
