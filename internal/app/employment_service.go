package app

import (
	"context"
	"strings"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/employment"
	"gradrecruit/internal/domain/student"
)

type EmploymentService struct {
	repo     employment.Repository
	students student.Repository
}

func NewEmploymentService(repo employment.Repository, students student.Repository) *EmploymentService {
	return &EmploymentService{repo: repo, students: students}
}

// Create records a realized hire. Reports are immutable once written; there
// is no update or delete path. Salary stays opaque text.
func (s *EmploymentService) Create(ctx context.Context, report employment.Report) (*employment.Report, error) {
	fields := map[string]string{}
	if strings.TrimSpace(report.CompanyName) == "" {
		fields["company_name"] = "company name is required"
	}
	if strings.TrimSpace(report.Position) == "" {
		fields["position"] = "position is required"
	}
	if report.EmployedAt.IsZero() {
		fields["employment_date"] = "employment date is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid employment report", fields)
	}
	if _, err := s.students.GetByID(ctx, report.StudentID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, report)
}

func (s *EmploymentService) ListAll(ctx context.Context) ([]employment.ReportView, error) {
	return s.repo.ListAll(ctx)
}
