package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/danielbohnn/quizcode/internal/models"
	"github.com/danielbohnn/quizcode/internal/service"
	"github.com/danielbohnn/quizcode/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	Generate(ctx context.Context, tier string, count int) ([]models.Question, error)
	Score(questions []models.Question, answers []models.SubmittedAnswer) (int, int)
}

type StatsSI interface {
	Record(ctx context.Context, userID int64, score int) error
	Aggregate(ctx context.Context, userID int64) (models.Statistics, error)
}

type AuthSI interface {
	Register(ctx context.Context, username, password string) (bool, error)
	Authenticate(ctx context.Context, username, password string) (int64, error)
}

type QuizT struct {
	bot         BotSender
	cache       *cache.Cache
	service     ServiceI
	sessionSize int
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service ServiceI, sessionSize int) *QuizT {
	return &QuizT{
		bot:         bot,
		cache:       cache,
		service:     service,
		sessionSize: sessionSize,
	}
}

func (t *QuizT) startQuiz(chatID, userID int64, tier string) {
	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	questions, err := t.service.Generate(ctx, tier, t.sessionSize)
	if err != nil {
		log.Printf("failed to generate quiz for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Failed to start a quiz. Try again later."))
		return
	}
	if len(questions) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ No questions available for this difficulty."))
		return
	}

	t.cache.SetSession(userID, cache.Session{Questions: questions})
	t.sendQuestion(chatID, userID)
}

func (t *QuizT) sendQuestion(chatID, userID int64) {
	session, exists := t.cache.GetSession(userID)
	if !exists {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ No active quiz. Press the quiz button to start one."))
		return
	}

	question, ok := session.Current()
	if !ok {
		t.finishQuiz(chatID, userID, session)
		return
	}

	text := fmt.Sprintf("❓ Question %d/%d (%s)\n\n%s\n\nA) %s\nB) %s\nC) %s\nD) %s",
		len(session.Answers)+1, len(session.Questions), question.Tier,
		question.Text, question.OptionA, question.OptionB, question.OptionC, question.OptionD)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("A", "ans_A"),
			tgbotapi.NewInlineKeyboardButtonData("B", "ans_B"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("C", "ans_C"),
			tgbotapi.NewInlineKeyboardButtonData("D", "ans_D"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) processAnswer(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}
	chatID := query.Message.Chat.ID

	session, exists := t.cache.GetSession(userID)
	if !exists {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ This quiz has expired. Start a new one."))
		return
	}

	question, ok := session.Current()
	if !ok {
		t.finishQuiz(chatID, userID, session)
		return
	}

	answer := strings.TrimPrefix(query.Data, "ans_")
	session.Answers = append(session.Answers, models.SubmittedAnswer{
		QuestionID: question.ID,
		Answer:     answer,
	})
	t.cache.SetSession(userID, session)

	statusText := "✅ Correct!"
	if !strings.EqualFold(answer, question.Correct) {
		statusText = "❌ Wrong. The correct answer was " + question.Correct + "."
	}

	editMsg := tgbotapi.NewEditMessageText(
		chatID,
		query.Message.MessageID,
		fmt.Sprintf("%s\n\n%s", query.Message.Text, statusText),
	)
	sendMessage(t.bot, editMsg)

	if session.Done() {
		t.finishQuiz(chatID, userID, session)
		return
	}

	t.sendQuestion(chatID, userID)
}

func (t *QuizT) finishQuiz(chatID, userID int64, session cache.Session) {
	t.cache.DeleteSession(userID)

	correct, total := t.service.Score(session.Questions, session.Answers)
	percentage := service.Percentage(correct, total)
	rank := service.Rank(percentage)

	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	accountID, err := t.ensureAccount(ctx, userID)
	if err != nil {
		log.Printf("failed to resolve account for user %d: %v", userID, err)
	} else if err := t.service.Record(ctx, accountID, correct); err != nil {
		log.Printf("failed to save quiz result for user %d: %v", userID, err)
	}

	text := fmt.Sprintf("🏁 Quiz finished!\n\nScore: %d/%d (%.0f%%)\nRank: %s", correct, total, percentage, rank)

	var buttons [][]tgbotapi.InlineKeyboardButton
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🎯 NEW QUIZ", "new_quiz"),
	})

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}

	sendMessage(t.bot, msg)
}

func (t *QuizT) sendStats(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	accountID, err := t.ensureAccount(ctx, userID)
	if err != nil {
		log.Printf("failed to resolve account for user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Failed to load statistics"))
		return
	}

	stats, err := t.service.Aggregate(ctx, accountID)
	if err != nil {
		log.Printf("failed to get stats for user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Failed to load statistics"))
		return
	}

	if stats.TotalCount == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "📊 You have not finished any quiz yet."))
		return
	}

	text := fmt.Sprintf("📊 Your statistics:\n\nQuizzes taken: %d\nAverage score: %.1f\nBest score: %d\nWorst score: %d",
		stats.TotalCount, stats.Mean, stats.Best, stats.Worst)

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

// ensureAccount maps a telegram user to a local account so results can be
// stored against a row in the users table. The derived credentials never
// leave the process.
func (t *QuizT) ensureAccount(ctx context.Context, telegramID int64) (int64, error) {
	username := fmt.Sprintf("tg%d", telegramID)
	password := fmt.Sprintf("tg-%d", telegramID)

	accountID, err := t.service.Authenticate(ctx, username, password)
	if err == nil {
		return accountID, nil
	}
	if !errors.Is(err, service.ErrInvalidCredentials) {
		return 0, err
	}

	if _, err := t.service.Register(ctx, username, password); err != nil {
		return 0, err
	}

	return t.service.Authenticate(ctx, username, password)
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	data := query.Data

	switch {
	case data == "new_quiz":
		if query.Message == nil {
			log.Printf("CallbackQuery without message: %v", query.ID)
			return
		}
		t.startQuiz(query.Message.Chat.ID, query.From.ID, "")
	case strings.HasPrefix(data, "tier_"):
		if query.Message == nil {
			log.Printf("CallbackQuery without message: %v", query.ID)
			return
		}
		t.startQuiz(query.Message.Chat.ID, query.From.ID, strings.TrimPrefix(data, "tier_"))
	case strings.HasPrefix(data, "ans_"):
		t.processAnswer(query)
	default:
		log.Printf("Unknown callback data: %s", query.Data)
	}
}
