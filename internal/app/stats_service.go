package app

import (
	"context"

	"gradrecruit/internal/domain/stats"
)

type StatsService struct {
	repo stats.Repository
}

func NewStatsService(repo stats.Repository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Get(ctx context.Context) (*stats.Statistics, error) {
	return s.repo.Collect(ctx)
}
