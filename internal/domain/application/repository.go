package application

import "context"

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
	FindByStudentAndVacancy(ctx context.Context, studentID, vacancyID int64) (*Application, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]StudentView, error)
	ListAll(ctx context.Context) ([]AuditView, error)
	ListRecent(ctx context.Context, limit int) ([]AuditView, error)
}
