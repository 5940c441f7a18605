package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the three tables when missing. The only dialect difference
// is the autoincrement primary key.
func Migrate(db *sqlx.DB) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		idColumn = "SERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		)`, idColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS questions (
			id %s,
			text TEXT NOT NULL,
			option_a TEXT NOT NULL,
			option_b TEXT NOT NULL,
			option_c TEXT NOT NULL,
			option_d TEXT NOT NULL,
			correct TEXT NOT NULL,
			tier TEXT NOT NULL
		)`, idColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS results (
			id %s,
			user_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`, idColumn),
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Seed inserts the static question bank once. A non-empty questions table
// means a previous run already seeded it.
func Seed(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM questions"); err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := db.Rebind(`INSERT INTO questions (text, option_a, option_b, option_c, option_d, correct, tier)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)

	for _, q := range seedQuestions {
		if _, err := db.Exec(query, q.Text, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.Correct, q.Tier); err != nil {
			return fmt.Errorf("failed to seed question %q: %w", q.Text, err)
		}
	}

	return nil
}
