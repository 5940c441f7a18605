package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danielbohnn/quizcode/internal/models"
	"github.com/danielbohnn/quizcode/internal/service"
	"go.uber.org/zap"
)

const loginAttempts = 3

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

type ServiceI interface {
	QuizSI
	StatsSI
	AuthSI
}

// App is the interactive console loop. Input and output are injected so the
// whole flow is testable with buffers.
type App struct {
	service     ServiceI
	sessionSize int
	in          *bufio.Reader
	out         io.Writer
	log         *zap.Logger
	eof         bool
}

func NewApp(service ServiceI, sessionSize int, in io.Reader, out io.Writer, log *zap.Logger) *App {
	return &App{
		service:     service,
		sessionSize: sessionSize,
		in:          bufio.NewReader(in),
		out:         out,
		log:         log,
	}
}

func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "========================================")
	fmt.Fprintln(a.out, "         WELCOME TO QUIZCODE")
	fmt.Fprintln(a.out, "  Test your Go knowledge: basic,")
	fmt.Fprintln(a.out, "  intermediate and advanced")
	fmt.Fprintln(a.out, "========================================")

	userID, ok := a.startScreen(ctx)
	if !ok {
		return nil
	}

	return a.menu(ctx, userID)
}

func (a *App) startScreen(ctx context.Context) (int64, bool) {
	for !a.eof {
		fmt.Fprintln(a.out, "\n1 - Login")
		fmt.Fprintln(a.out, "2 - Register")
		fmt.Fprintln(a.out, "3 - Quit")

		switch a.prompt("\nChoose an option: ") {
		case "1":
			if userID, ok := a.login(ctx); ok {
				return userID, true
			}
		case "2":
			if a.register(ctx) {
				fmt.Fprintln(a.out, "Now log in with your credentials:")
				if userID, ok := a.login(ctx); ok {
					return userID, true
				}
			}
		case "3":
			fmt.Fprintln(a.out, "\nGoodbye!")
			return 0, false
		default:
			fmt.Fprintln(a.out, "\nInvalid option!")
		}
	}

	return 0, false
}

func (a *App) login(ctx context.Context) (int64, bool) {
	fmt.Fprintln(a.out, "\n---- LOGIN ----")

	for attempt := 1; attempt <= loginAttempts; attempt++ {
		username := a.prompt("Username: ")
		password := a.prompt("Password: ")

		userID, err := a.service.Authenticate(ctx, username, password)
		if err == nil {
			fmt.Fprintln(a.out, "\nLogin successful!")
			return userID, true
		}

		if !errors.Is(err, service.ErrInvalidCredentials) && !errors.Is(err, service.ErrEmptyCredentials) {
			a.log.Error("login failed", zap.Error(err))
			fmt.Fprintln(a.out, "\nSomething went wrong, try again later.")
			return 0, false
		}

		remaining := loginAttempts - attempt
		if remaining > 0 {
			fmt.Fprintf(a.out, "Invalid username or password. Attempts left: %d\n\n", remaining)
		} else {
			fmt.Fprintln(a.out, "Too many failed attempts.")
		}
	}

	return 0, false
}

func (a *App) register(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n---- REGISTER ----")

	for !a.eof {
		username := a.prompt("Choose a username: ")
		if username == "" {
			fmt.Fprintln(a.out, "Username must not be empty!")
			continue
		}

		password := a.prompt("Choose a password: ")
		if password == "" {
			fmt.Fprintln(a.out, "Password must not be empty!")
			continue
		}

		if a.prompt("Confirm the password: ") != password {
			fmt.Fprintln(a.out, "Passwords do not match! Try again.")
			continue
		}

		created, err := a.service.Register(ctx, username, password)
		if err != nil {
			a.log.Error("register failed", zap.Error(err))
			fmt.Fprintln(a.out, "Something went wrong, try again later.")
			return false
		}
		if created {
			fmt.Fprintln(a.out, "\nRegistered successfully!")
			return true
		}
		fmt.Fprintln(a.out, "Username already taken! Choose another one.")
	}

	return false
}

func (a *App) menu(ctx context.Context, userID int64) error {
	var session []models.Question

	for !a.eof {
		fmt.Fprintln(a.out, `
  ============ QUIZCODE MENU ============
  1 - Take a test (random)
  2 - Take a test by difficulty
  3 - Retake the last test
  4 - Generate a new test
  5 - Show statistics
  6 - Quit`)

		switch a.prompt("\nChoose an option: ") {
		case "1":
			questions, err := a.service.Generate(ctx, "", a.sessionSize)
			if err != nil {
				a.log.Error("generate failed", zap.Error(err))
				fmt.Fprintln(a.out, "Failed to generate a test, try again later.")
				continue
			}
			session = questions
			a.takeAndRecord(ctx, userID, session)
		case "2":
			tier, ok := a.chooseTier()
			if !ok {
				fmt.Fprintln(a.out, "Invalid option!")
				continue
			}
			questions, err := a.service.Generate(ctx, tier, a.sessionSize)
			if err != nil {
				a.log.Error("generate failed", zap.String("tier", tier), zap.Error(err))
				fmt.Fprintln(a.out, "Failed to generate a test, try again later.")
				continue
			}
			session = questions
			a.takeAndRecord(ctx, userID, session)
		case "3":
			if session == nil {
				fmt.Fprintln(a.out, "\nNo test generated yet. Generate one first.")
				continue
			}
			a.takeAndRecord(ctx, userID, session)
		case "4":
			questions, err := a.service.Generate(ctx, "", a.sessionSize)
			if err != nil {
				a.log.Error("generate failed", zap.Error(err))
				fmt.Fprintln(a.out, "Failed to generate a test, try again later.")
				continue
			}
			session = questions
			fmt.Fprintln(a.out, "\nNew test generated!")
		case "5":
			a.showStatistics(ctx, userID)
		case "6":
			fmt.Fprintln(a.out, "\nThanks for playing quizcode!")
			return nil
		default:
			fmt.Fprintln(a.out, "\nInvalid option! Choose a number from 1 to 6.")
		}
	}

	return nil
}

func (a *App) chooseTier() (string, bool) {
	fmt.Fprintln(a.out, "\nChoose the difficulty:")
	fmt.Fprintln(a.out, "1 - Basic")
	fmt.Fprintln(a.out, "2 - Intermediate")
	fmt.Fprintln(a.out, "3 - Advanced")

	switch a.prompt("Option: ") {
	case "1":
		return models.TierBasic, true
	case "2":
		return models.TierIntermediate, true
	case "3":
		return models.TierAdvanced, true
	default:
		return "", false
	}
}

func (a *App) takeAndRecord(ctx context.Context, userID int64, session []models.Question) {
	correct, _ := a.takeTest(session)

	if err := a.service.Record(ctx, userID, correct); err != nil {
		a.log.Error("failed to record result", zap.Int64("user_id", userID), zap.Error(err))
		fmt.Fprintln(a.out, "Warning: the result could not be saved.")
	}
}

// takeTest walks the session question by question, checking each answer
// locally against the retained key, then scores the collected answers as one
// submission.
func (a *App) takeTest(session []models.Question) (int, int) {
	fmt.Fprintln(a.out, "\n==================================================")
	fmt.Fprintf(a.out, "STARTING TEST - %d QUESTIONS\n", len(session))
	fmt.Fprintln(a.out, "==================================================")

	answers := make([]models.SubmittedAnswer, 0, len(session))

	for i, question := range session {
		fmt.Fprintf(a.out, "\n[Question %d/%d] - Difficulty: %s\n", i+1, len(session), strings.ToUpper(question.Tier))
		fmt.Fprintln(a.out, question.Text)
		fmt.Fprintf(a.out, "A) %s\n", question.OptionA)
		fmt.Fprintf(a.out, "B) %s\n", question.OptionB)
		fmt.Fprintf(a.out, "C) %s\n", question.OptionC)
		fmt.Fprintf(a.out, "D) %s\n", question.OptionD)

		answer := a.readAnswer()
		answers = append(answers, models.SubmittedAnswer{QuestionID: question.ID, Answer: answer})

		if strings.EqualFold(strings.TrimSpace(answer), question.Correct) {
			fmt.Fprintln(a.out, "Correct!")
		} else {
			fmt.Fprintf(a.out, "Wrong! The correct answer was: %s\n", question.Correct)
		}
	}

	correct, total := a.service.Score(session, answers)
	percentage := service.Percentage(correct, total)

	fmt.Fprintln(a.out, "\n==================================================")
	fmt.Fprintf(a.out, "FINAL RESULT: %d/%d (%.0f%%) - %s\n", correct, total, percentage, service.Rank(percentage))
	fmt.Fprintln(a.out, "==================================================")

	return correct, total
}

func (a *App) readAnswer() string {
	for !a.eof {
		answer := strings.ToUpper(a.prompt("\nYour answer (A/B/C/D): "))
		switch answer {
		case "A", "B", "C", "D":
			return answer
		}
		fmt.Fprintln(a.out, "Invalid answer! Type A, B, C or D.")
	}

	return ""
}

func (a *App) showStatistics(ctx context.Context, userID int64) {
	stats, err := a.service.Aggregate(ctx, userID)
	if err != nil {
		a.log.Error("failed to aggregate statistics", zap.Int64("user_id", userID), zap.Error(err))
		fmt.Fprintln(a.out, "Failed to load statistics, try again later.")
		return
	}

	if stats.TotalCount == 0 {
		fmt.Fprintln(a.out, "\nYou have not taken any test yet.")
		return
	}

	fmt.Fprintln(a.out, "\n==================================================")
	fmt.Fprintln(a.out, "YOUR STATISTICS")
	fmt.Fprintln(a.out, "==================================================")
	fmt.Fprintf(a.out, "Tests taken: %d\n", stats.TotalCount)
	fmt.Fprintf(a.out, "Average score: %.1f/%d\n", stats.Mean, a.sessionSize)
	fmt.Fprintf(a.out, "Best score: %d/%d\n", stats.Best, a.sessionSize)
	fmt.Fprintf(a.out, "Worst score: %d/%d\n", stats.Worst, a.sessionSize)
	fmt.Fprintln(a.out, "==================================================")
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		a.eof = true
	}
	return strings.TrimSpace(line)
}
