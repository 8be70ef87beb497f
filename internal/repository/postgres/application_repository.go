package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.AppliedAt = time.Now().UTC()
	if app.Status == "" {
		app.Status = application.StatusPending
	}
	err := r.db.QueryRowContext(ctx, `INSERT INTO applications (student_id, vacancy_id, status, cover_letter, application_date)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		app.StudentID, app.VacancyID, app.Status, app.CoverLetter, app.AppliedAt).Scan(&app.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, COALESCE(student_id, 0), COALESCE(vacancy_id, 0), status, cover_letter, application_date FROM applications WHERE id = $1`, id)
	var app application.Application
	if err := row.Scan(&app.ID, &app.StudentID, &app.VacancyID, &app.Status, &app.CoverLetter, &app.AppliedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByStudentAndVacancy(ctx context.Context, studentID, vacancyID int64) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, student_id, vacancy_id, status, cover_letter, application_date FROM applications WHERE student_id = $1 AND vacancy_id = $2`, studentID, vacancyID)
	var app application.Application
	if err := row.Scan(&app.ID, &app.StudentID, &app.VacancyID, &app.Status, &app.CoverLetter, &app.AppliedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

// UpdateStatus is a plain overwrite; the lifecycle engine above decides what
// writes are allowed.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status application.Status) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

// ListByStudent inner-joins the vacancy so each row carries the position,
// company, and salary without a second round trip.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]application.StudentView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.vacancy_id, a.status, a.cover_letter, a.application_date, v.position, v.company_name, v.salary_range
		FROM applications a
		JOIN vacancies v ON v.id = a.vacancy_id
		WHERE a.student_id = $1
		ORDER BY a.application_date DESC`, studentID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list student applications", err)
	}
	defer rows.Close()
	var items []application.StudentView
	for rows.Next() {
		var item application.StudentView
		if err := rows.Scan(&item.ID, &item.VacancyID, &item.Status, &item.CoverLetter, &item.AppliedAt, &item.Position, &item.CompanyName, &item.SalaryRange); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ListAll left-joins students and vacancies: rows whose student or vacancy
// was detached still appear, with nil fields.
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.AuditView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.student_id, a.vacancy_id, a.status, a.cover_letter, a.application_date,
			s.full_name, s.email, s.contact_number, v.position, v.company_name, v.salary_range
		FROM applications a
		LEFT JOIN students s ON s.id = a.student_id
		LEFT JOIN vacancies v ON v.id = a.vacancy_id
		ORDER BY a.application_date DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return collectAuditViews(rows)
}

// ListRecent keeps only rows where both joins matched: the recency feed must
// never show orphaned applications, unlike the full audit listing.
func (r *ApplicationRepository) ListRecent(ctx context.Context, limit int) ([]application.AuditView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.student_id, a.vacancy_id, a.status, a.cover_letter, a.application_date,
			s.full_name, s.email, s.contact_number, v.position, v.company_name, v.salary_range
		FROM applications a
		LEFT JOIN students s ON s.id = a.student_id
		LEFT JOIN vacancies v ON v.id = a.vacancy_id
		WHERE s.full_name IS NOT NULL AND v.position IS NOT NULL
		ORDER BY a.application_date DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recent applications", err)
	}
	return collectAuditViews(rows)
}

func collectAuditViews(rows *sql.Rows) ([]application.AuditView, error) {
	defer rows.Close()
	var items []application.AuditView
	for rows.Next() {
		var item application.AuditView
		if err := rows.Scan(&item.ID, &item.StudentID, &item.VacancyID, &item.Status, &item.CoverLetter, &item.AppliedAt,
			&item.StudentName, &item.StudentEmail, &item.ContactNumber, &item.Position, &item.CompanyName, &item.SalaryRange); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}
