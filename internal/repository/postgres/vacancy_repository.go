package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/vacancy"
)

const vacancyColumns = `id, company_name, position, specialization, required_course, salary_range, description, requirements, contact_email, application_deadline, is_active, posted_date`

type VacancyRepository struct {
	db *sql.DB
}

func NewVacancyRepository(db *sql.DB) *VacancyRepository {
	return &VacancyRepository{db: db}
}

func (r *VacancyRepository) Create(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	v.PostedAt = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, `INSERT INTO vacancies (company_name, position, specialization, required_course, salary_range, description, requirements, contact_email, application_deadline, is_active, posted_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		v.CompanyName, v.Position, v.Specialization, v.RequiredCourse, v.SalaryRange, v.Description, v.Requirements, v.ContactEmail, v.Deadline, v.Active, v.PostedAt).Scan(&v.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create vacancy", err)
	}
	return &v, nil
}

func (r *VacancyRepository) GetByID(ctx context.Context, id int64) (*vacancy.Vacancy, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vacancyColumns+` FROM vacancies WHERE id = $1`, id)
	var v vacancy.Vacancy
	if err := row.Scan(&v.ID, &v.CompanyName, &v.Position, &v.Specialization, &v.RequiredCourse, &v.SalaryRange, &v.Description, &v.Requirements, &v.ContactEmail, &v.Deadline, &v.Active, &v.PostedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "vacancy not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load vacancy", err)
	}
	return &v, nil
}

func (r *VacancyRepository) Update(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE vacancies SET company_name = $1, position = $2, specialization = $3, required_course = $4, salary_range = $5, description = $6, requirements = $7, contact_email = $8, application_deadline = $9, is_active = $10
		WHERE id = $11`,
		v.CompanyName, v.Position, v.Specialization, v.RequiredCourse, v.SalaryRange, v.Description, v.Requirements, v.ContactEmail, v.Deadline, v.Active, v.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update vacancy", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "vacancy not found", sql.ErrNoRows)
	}
	return &v, nil
}

// SetActive soft-deletes or reactivates; rows are never physically removed
// while applications reference them.
func (r *VacancyRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE vacancies SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update vacancy", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "vacancy not found", sql.ErrNoRows)
	}
	return nil
}

func (r *VacancyRepository) ListAll(ctx context.Context) ([]vacancy.Vacancy, error) {
	return r.list(ctx, `SELECT `+vacancyColumns+` FROM vacancies ORDER BY posted_date DESC`)
}

func (r *VacancyRepository) ListActive(ctx context.Context) ([]vacancy.Vacancy, error) {
	return r.list(ctx, `SELECT `+vacancyColumns+` FROM vacancies WHERE is_active = TRUE ORDER BY posted_date DESC`)
}

func (r *VacancyRepository) list(ctx context.Context, query string) ([]vacancy.Vacancy, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list vacancies", err)
	}
	defer rows.Close()
	var items []vacancy.Vacancy
	for rows.Next() {
		var v vacancy.Vacancy
		if err := rows.Scan(&v.ID, &v.CompanyName, &v.Position, &v.Specialization, &v.RequiredCourse, &v.SalaryRange, &v.Description, &v.Requirements, &v.ContactEmail, &v.Deadline, &v.Active, &v.PostedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan vacancy", err)
		}
		items = append(items, v)
	}
	return items, nil
}
