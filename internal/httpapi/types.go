package httpapi

import "github.com/danielbohnn/quizcode/internal/models"

type registerRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type generateRequest struct {
	Tier  string `json:"tier" validate:"omitempty,oneof=basic intermediate advanced"`
	Count int    `json:"count" validate:"min=0,max=100"`
}

type checkRequest struct {
	QuestionID int64  `json:"question_id" validate:"required,min=1"`
	Answer     string `json:"answer" validate:"required"`
}

type submitRequest struct {
	UserID  int64                    `json:"user_id" validate:"required,min=1"`
	Answers []models.SubmittedAnswer `json:"answers" validate:"required,min=1,dive"`
}
