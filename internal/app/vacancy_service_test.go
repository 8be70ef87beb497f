package app

import (
	"context"
	"testing"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/vacancy"
)

func newVacancyFixture() (*VacancyService, *fakeVacancyRepo, *fakeNotificationRepo) {
	vacancies := newFakeVacancyRepo()
	notifications := newFakeNotificationRepo()
	return NewVacancyService(vacancies, notifications, adminUserID), vacancies, notifications
}

func TestVacancyServiceCreate_ActivatesAndNotifies(t *testing.T) {
	service, _, notifications := newVacancyFixture()

	created, err := service.Create(context.Background(), vacancy.Vacancy{
		CompanyName: "Acme",
		Position:    "Junior Engineer",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !created.Active {
		t.Fatal("expected new vacancy to be active")
	}
	if got := len(notifications.forUser(adminUserID)); got != 1 {
		t.Fatalf("expected 1 admin notification, got %d", got)
	}
}

func TestVacancyServiceCreate_RequiresCompanyAndPosition(t *testing.T) {
	service, _, _ := newVacancyFixture()

	_, err := service.Create(context.Background(), vacancy.Vacancy{Position: "Junior Engineer"})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVacancyServiceUpdate_PreservesActiveAndPostedAt(t *testing.T) {
	service, _, _ := newVacancyFixture()

	created, err := service.Create(context.Background(), vacancy.Vacancy{
		CompanyName: "Acme",
		Position:    "Junior Engineer",
	})
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if err := service.SetActive(context.Background(), created.ID, false); err != nil {
		t.Fatalf("expected deactivate to succeed, got %v", err)
	}

	updated, err := service.Update(context.Background(), vacancy.Vacancy{
		ID:          created.ID,
		CompanyName: "Acme",
		Position:    "Engineer II",
		Active:      true,
	})
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	if updated.Active {
		t.Fatal("expected update to preserve the stored active flag")
	}
	if !updated.PostedAt.Equal(created.PostedAt) {
		t.Fatal("expected posted date to be preserved on update")
	}
	if updated.Position != "Engineer II" {
		t.Fatalf("expected position updated, got %q", updated.Position)
	}
}

func TestVacancyServiceListActive_ExcludesInactive(t *testing.T) {
	service, _, _ := newVacancyFixture()

	active, err := service.Create(context.Background(), vacancy.Vacancy{CompanyName: "Acme", Position: "A"})
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	closed, err := service.Create(context.Background(), vacancy.Vacancy{CompanyName: "Acme", Position: "B"})
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if err := service.SetActive(context.Background(), closed.ID, false); err != nil {
		t.Fatalf("expected deactivate to succeed, got %v", err)
	}

	listed, err := service.ListActive(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(listed) != 1 || listed[0].ID != active.ID {
		t.Fatalf("expected only the active vacancy, got %+v", listed)
	}

	all, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected deactivated vacancy retained in full listing, got %d", len(all))
	}
}
