package postgres

import (
	"context"
	"database/sql"
	"time"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/employment"
)

type EmploymentRepository struct {
	db *sql.DB
}

func NewEmploymentRepository(db *sql.DB) *EmploymentRepository {
	return &EmploymentRepository{db: db}
}

func (r *EmploymentRepository) Create(ctx context.Context, report employment.Report) (*employment.Report, error) {
	report.ReportedAt = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, `INSERT INTO employment_reports (student_id, company_name, position, employment_date, salary, report_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		report.StudentID, report.CompanyName, report.Position, report.EmployedAt, report.Salary, report.ReportedAt).Scan(&report.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create employment report", err)
	}
	return &report, nil
}

func (r *EmploymentRepository) ListAll(ctx context.Context) ([]employment.ReportView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT er.id, COALESCE(er.student_id, 0), er.company_name, er.position, er.employment_date, er.salary, er.report_date, s.full_name, s.specialization
		FROM employment_reports er
		LEFT JOIN students s ON s.id = er.student_id
		ORDER BY er.employment_date DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list employment reports", err)
	}
	defer rows.Close()
	var items []employment.ReportView
	for rows.Next() {
		var item employment.ReportView
		if err := rows.Scan(&item.ID, &item.StudentID, &item.CompanyName, &item.Position, &item.EmployedAt, &item.Salary, &item.ReportedAt, &item.StudentName, &item.StudentSpecialization); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan employment report", err)
		}
		items = append(items, item)
	}
	return items, nil
}
