package app

import (
	"context"
	"errors"
	"testing"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/application"
	"gradrecruit/internal/domain/student"
	"gradrecruit/internal/domain/vacancy"
)

const adminUserID = int64(1)

func newApplicationFixture(t *testing.T) (*ApplicationService, *fakeStudentRepo, *fakeVacancyRepo, *fakeApplicationRepo, *fakeNotificationRepo) {
	t.Helper()
	students := newFakeStudentRepo()
	vacancies := newFakeVacancyRepo()
	applications := newFakeApplicationRepo(students, vacancies)
	notifications := newFakeNotificationRepo()
	service := NewApplicationService(applications, vacancies, students, notifications, adminUserID)
	return service, students, vacancies, applications, notifications
}

func seedStudent(t *testing.T, students *fakeStudentRepo, userID int64) *student.Student {
	t.Helper()
	profile, err := students.Create(context.Background(), student.Student{
		UserID:   &userID,
		FullName: "Alice Novak",
		Course:   4,
		Email:    "alice@example.edu",
		Active:   true,
	})
	if err != nil {
		t.Fatalf("expected student created, got %v", err)
	}
	return profile
}

func seedVacancy(t *testing.T, vacancies *fakeVacancyRepo, active bool) *vacancy.Vacancy {
	t.Helper()
	vac, err := vacancies.Create(context.Background(), vacancy.Vacancy{
		CompanyName: "Acme",
		Position:    "Junior Engineer",
		Active:      active,
	})
	if err != nil {
		t.Fatalf("expected vacancy created, got %v", err)
	}
	return vac
}

func TestApplicationServiceApply_CreatesPending(t *testing.T) {
	service, students, vacancies, _, notifications := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)

	created, err := service.Apply(context.Background(), 10, vac.ID, "I am interested")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.CoverLetter != "I am interested" {
		t.Fatalf("expected cover letter to be stored, got %q", created.CoverLetter)
	}
	if got := len(notifications.forUser(10)); got != 1 {
		t.Fatalf("expected 1 applicant notification, got %d", got)
	}
	if got := len(notifications.forUser(adminUserID)); got != 1 {
		t.Fatalf("expected 1 admin notification, got %d", got)
	}
}

func TestApplicationServiceApply_RequiresProfile(t *testing.T) {
	service, _, vacancies, _, _ := newApplicationFixture(t)
	vac := seedVacancy(t, vacancies, true)

	_, err := service.Apply(context.Background(), 10, vac.ID, "")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceApply_InactiveVacancy(t *testing.T) {
	service, students, vacancies, _, _ := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, false)

	_, err := service.Apply(context.Background(), 10, vac.ID, "")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceApply_Duplicate(t *testing.T) {
	service, students, vacancies, _, _ := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)

	if _, err := service.Apply(context.Background(), 10, vac.ID, ""); err != nil {
		t.Fatalf("expected first apply to succeed, got %v", err)
	}
	_, err := service.Apply(context.Background(), 10, vac.ID, "")
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestApplicationServiceApply_NotificationFailureIsIgnored(t *testing.T) {
	service, students, vacancies, _, notifications := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)
	notifications.createErr = errors.New("notification store down")

	created, err := service.Apply(context.Background(), 10, vac.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed despite notification failure, got %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
}

func TestApplicationServiceUpdateStatus_AcceptThenReject(t *testing.T) {
	service, students, vacancies, _, notifications := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)
	created, err := service.Apply(context.Background(), 10, vac.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	accepted, err := service.UpdateStatus(context.Background(), created.ID, application.StatusAccepted)
	if err != nil {
		t.Fatalf("expected accept to succeed, got %v", err)
	}
	if accepted.Status != application.StatusAccepted {
		t.Fatalf("expected accepted status, got %q", accepted.Status)
	}

	rejected, err := service.UpdateStatus(context.Background(), created.ID, application.StatusRejected)
	if err != nil {
		t.Fatalf("expected reject after accept to succeed, got %v", err)
	}
	if rejected.Status != application.StatusRejected {
		t.Fatalf("expected rejected status, got %q", rejected.Status)
	}

	// apply + two status changes
	if got := len(notifications.forUser(10)); got != 3 {
		t.Fatalf("expected 3 applicant notifications, got %d", got)
	}
}

func TestApplicationServiceUpdateStatus_SameStatusIsNoOp(t *testing.T) {
	service, students, vacancies, _, notifications := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)
	created, err := service.Apply(context.Background(), 10, vac.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}
	before := len(notifications.forUser(10))

	updated, err := service.UpdateStatus(context.Background(), created.ID, application.StatusPending)
	if err != nil {
		t.Fatalf("expected no-op update to succeed, got %v", err)
	}
	if updated.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %q", updated.Status)
	}
	if got := len(notifications.forUser(10)); got != before {
		t.Fatalf("expected no new notifications, got %d", got-before)
	}
}

func TestApplicationServiceUpdateStatus_NormalizesInput(t *testing.T) {
	service, students, vacancies, _, _ := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)
	created, err := service.Apply(context.Background(), 10, vac.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	updated, err := service.UpdateStatus(context.Background(), created.ID, application.Status("  ACCEPTED "))
	if err != nil {
		t.Fatalf("expected normalized update to succeed, got %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Fatalf("expected accepted status, got %q", updated.Status)
	}
}

func TestApplicationServiceUpdateStatus_UnknownStatus(t *testing.T) {
	service, students, vacancies, _, _ := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)
	created, err := service.Apply(context.Background(), 10, vac.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	_, err = service.UpdateStatus(context.Background(), created.ID, application.Status("withdrawn"))
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceUpdateStatus_NotFound(t *testing.T) {
	service, _, _, _, _ := newApplicationFixture(t)

	_, err := service.UpdateStatus(context.Background(), 404, application.StatusAccepted)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestApplicationServiceListForStudent_JoinsVacancy(t *testing.T) {
	service, students, vacancies, _, _ := newApplicationFixture(t)
	seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)
	if _, err := service.Apply(context.Background(), 10, vac.ID, ""); err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	views, err := service.ListForStudent(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 application, got %d", len(views))
	}
	if views[0].Position != "Junior Engineer" || views[0].CompanyName != "Acme" {
		t.Fatalf("expected vacancy fields joined, got %+v", views[0])
	}
}

func TestApplicationServiceListAll_KeepsDetachedRows(t *testing.T) {
	service, students, vacancies, _, _ := newApplicationFixture(t)
	profile := seedStudent(t, students, 10)
	vac := seedVacancy(t, vacancies, true)
	if _, err := service.Apply(context.Background(), 10, vac.ID, ""); err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}
	if err := students.Delete(context.Background(), profile.ID); err != nil {
		t.Fatalf("expected student deleted, got %v", err)
	}

	all, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected detached application to remain listed, got %d rows", len(all))
	}
	if all[0].StudentName != nil {
		t.Fatalf("expected nil student name on detached row, got %q", *all[0].StudentName)
	}

	recent, err := service.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("expected detached row excluded from recent feed, got %d rows", len(recent))
	}
}
