package models

const (
	TierBasic        = "basic"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
)

// Tiers lists the valid difficulty tiers in ascending order.
var Tiers = []string{TierBasic, TierIntermediate, TierAdvanced}

func ValidTier(tier string) bool {
	for _, t := range Tiers {
		if t == tier {
			return true
		}
	}
	return false
}

type Question struct {
	ID      int64  `db:"id"`
	Text    string `db:"text"`
	OptionA string `db:"option_a"`
	OptionB string `db:"option_b"`
	OptionC string `db:"option_c"`
	OptionD string `db:"option_d"`
	Correct string `db:"correct"`
	Tier    string `db:"tier"`
}

// QuestionView is the presentation projection of a Question. Correct is
// populated only when the caller asks for the answer key; with omitempty the
// redacted JSON never carries it.
type QuestionView struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
	Tier    string `json:"tier"`
	Correct string `json:"correct,omitempty"`
}

type SubmittedAnswer struct {
	QuestionID int64  `json:"question_id" validate:"required,min=1"`
	Answer     string `json:"answer"`
}
