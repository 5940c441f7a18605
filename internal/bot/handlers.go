package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonNewQuiz  = "🎯 New quiz"
	ButtonByTier   = "🎚 By difficulty"
	ButtonStats    = "📊 My statistics"
	ButtonMainMenu = "🏠 Main menu"
	ButtonHelp     = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "quiz":
		t.quiz.startQuiz(message.Chat.ID, message.From.ID, "")
	case "stats":
		t.quiz.sendStats(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I am a Go programming quiz bot!\n\n" +
		"✨ What I can do:\n" +
		"• 🎯 Run quizzes of 10 questions\n" +
		"• 🎚 Filter by difficulty: basic, intermediate, advanced\n" +
		"• 📊 Track your scores and rank\n\n" +
		"Press a button below to start!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonNewQuiz),
			tgbotapi.NewKeyboardButton(ButtonByTier),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStats),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start — start the bot
/quiz — start a random quiz
/stats — show your statistics
/help — this message

🎯 Use the buttons:
• "New quiz" — ten random questions
• "By difficulty" — pick basic, intermediate or advanced
• "My statistics" — taken, average, best and worst
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	switch message.Text {
	case ButtonNewQuiz:
		t.quiz.startQuiz(message.Chat.ID, message.From.ID, "")
	case ButtonByTier:
		t.showTierMenu(message)
	case ButtonStats:
		t.quiz.sendStats(message)
	case ButtonMainMenu:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I did not get that. Use the buttons below.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) showTierMenu(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🟢 Basic", "tier_basic"),
			tgbotapi.NewInlineKeyboardButtonData("🟡 Intermediate", "tier_intermediate"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔴 Advanced", "tier_advanced"),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "Pick a difficulty:")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case data == "new_quiz" || strings.HasPrefix(data, "tier_") || strings.HasPrefix(data, "ans_"):
		t.quiz.handleQuizCallbackQuery(query)

	case data == "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
