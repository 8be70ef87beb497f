package app

import (
	"context"
	"fmt"
	"strings"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/notification"
	"gradrecruit/internal/domain/vacancy"
)

type VacancyService struct {
	repo          vacancy.Repository
	notifications notification.Repository
	adminUserID   int64
}

func NewVacancyService(repo vacancy.Repository, notifications notification.Repository, adminUserID int64) *VacancyService {
	return &VacancyService{repo: repo, notifications: notifications, adminUserID: adminUserID}
}

func (s *VacancyService) Create(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	if err := validateVacancy(v); err != nil {
		return nil, err
	}
	v.Active = true
	created, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	notify(ctx, s.notifications, s.adminUserID, notification.TypeInfo,
		"New vacancy", fmt.Sprintf("%s posted %s.", created.CompanyName, created.Position))
	return created, nil
}

func (s *VacancyService) Update(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	if err := validateVacancy(v); err != nil {
		return nil, err
	}
	current, err := s.repo.GetByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.Active = current.Active
	v.PostedAt = current.PostedAt
	return s.repo.Update(ctx, v)
}

// SetActive is the soft delete: an inactive vacancy disappears from the
// active listing but its row, and every application referencing it, stays.
func (s *VacancyService) SetActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

func (s *VacancyService) Get(ctx context.Context, id int64) (*vacancy.Vacancy, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VacancyService) ListActive(ctx context.Context) ([]vacancy.Vacancy, error) {
	return s.repo.ListActive(ctx)
}

func (s *VacancyService) ListAll(ctx context.Context) ([]vacancy.Vacancy, error) {
	return s.repo.ListAll(ctx)
}

func validateVacancy(v vacancy.Vacancy) error {
	fields := map[string]string{}
	if strings.TrimSpace(v.CompanyName) == "" {
		fields["company_name"] = "company name is required"
	}
	if strings.TrimSpace(v.Position) == "" {
		fields["position"] = "position is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid vacancy", fields)
	}
	return nil
}
