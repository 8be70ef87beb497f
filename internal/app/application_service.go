package app

import (
	"context"
	"fmt"
	"strings"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/application"
	"gradrecruit/internal/domain/notification"
	"gradrecruit/internal/domain/student"
	"gradrecruit/internal/domain/vacancy"
)

// ApplicationService is the lifecycle engine: it owns the path from a
// student's submission to a terminal status and emits notifications for
// every notable event.
type ApplicationService struct {
	repo          application.Repository
	vacancies     vacancy.Repository
	students      student.Repository
	notifications notification.Repository
	adminUserID   int64
}

func NewApplicationService(repo application.Repository, vacancies vacancy.Repository, students student.Repository, notifications notification.Repository, adminUserID int64) *ApplicationService {
	return &ApplicationService{repo: repo, vacancies: vacancies, students: students, notifications: notifications, adminUserID: adminUserID}
}

func (s *ApplicationService) Apply(ctx context.Context, userID, vacancyID int64, coverLetter string) (*application.Application, error) {
	profile, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeValidation, "student profile is required", nil)
		}
		return nil, err
	}
	vac, err := s.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if !vac.Active {
		return nil, common.NewError(common.CodeValidation, "vacancy is no longer active", nil)
	}
	if _, err := s.repo.FindByStudentAndVacancy(ctx, profile.ID, vacancyID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.repo.Create(ctx, application.Application{
		StudentID:   profile.ID,
		VacancyID:   vacancyID,
		Status:      application.StatusPending,
		CoverLetter: coverLetter,
	})
	if err != nil {
		return nil, err
	}
	notify(ctx, s.notifications, userID, notification.TypeSuccess,
		"Application submitted",
		fmt.Sprintf("Your application for %s at %s was submitted.", vac.Position, vac.CompanyName))
	notify(ctx, s.notifications, s.adminUserID, notification.TypeInfo,
		"New application",
		fmt.Sprintf("%s applied for %s at %s.", profile.FullName, vac.Position, vac.CompanyName))
	return created, nil
}

// UpdateStatus overwrites the status. Setting the current status again is a
// no-op success. There is no guard against moving between accepted and
// rejected: a resolved application may be re-opened by a plain overwrite.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID int64, status application.Status) (*application.Application, error) {
	next := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !isKnownStatus(next) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, accepted, or rejected"})
	}
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status == next {
		return app, nil
	}
	updated, err := s.repo.UpdateStatus(ctx, applicationID, next)
	if err != nil {
		return nil, err
	}
	s.notifyApplicant(ctx, updated, next)
	return updated, nil
}

func (s *ApplicationService) notifyApplicant(ctx context.Context, app *application.Application, status application.Status) {
	if app.StudentID == 0 {
		return
	}
	profile, err := s.students.GetByID(ctx, app.StudentID)
	if err != nil || profile.UserID == nil {
		return
	}
	ntype := notification.TypeInfo
	switch status {
	case application.StatusAccepted:
		ntype = notification.TypeSuccess
	case application.StatusRejected:
		ntype = notification.TypeWarning
	}
	notify(ctx, s.notifications, *profile.UserID, ntype,
		"Application status changed",
		fmt.Sprintf("Your application #%d is now %s.", app.ID, status))
}

func (s *ApplicationService) Get(ctx context.Context, id int64) (*application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

// ListForStudent resolves the caller's profile and returns applications
// joined with their vacancies, most recent first.
func (s *ApplicationService) ListForStudent(ctx context.Context, userID int64) ([]application.StudentView, error) {
	profile, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeValidation, "student profile is required", nil)
		}
		return nil, err
	}
	return s.repo.ListByStudent(ctx, profile.ID)
}

// ListAll is the audit listing: detached rows appear with nil student or
// vacancy fields rather than being dropped.
func (s *ApplicationService) ListAll(ctx context.Context) ([]application.AuditView, error) {
	return s.repo.ListAll(ctx)
}

// ListRecent feeds the dashboard and never includes orphaned rows.
func (s *ApplicationService) ListRecent(ctx context.Context, limit int) ([]application.AuditView, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListRecent(ctx, limit)
}

func isKnownStatus(status application.Status) bool {
	switch status {
	case application.StatusPending, application.StatusAccepted, application.StatusRejected:
		return true
	default:
		return false
	}
}
