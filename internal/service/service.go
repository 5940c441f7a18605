package service

import (
	"go.uber.org/zap"
)

type RepositoryI interface {
	QuestionRI
	UserRI
	ResultRI
}

type Service struct {
	*QuizS
	*StatsS
	*AuthS
}

func InitServices(repo RepositoryI, log *zap.Logger) *Service {
	return &Service{
		QuizS:  NewQuizService(repo, log),
		StatsS: NewStatsService(repo, log),
		AuthS:  NewAuthService(repo, log),
	}
}
