package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/student"
)

const studentColumns = `id, user_id, full_name, course, specialization, skills, work_experience, portfolio_link, contact_number, email, gpa, university, graduation_year, is_active, registration_date, last_update`

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, s student.Student) (*student.Student, error) {
	now := time.Now().UTC()
	s.RegisteredAt = now
	s.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, `INSERT INTO students (user_id, full_name, course, specialization, skills, work_experience, portfolio_link, contact_number, email, gpa, university, graduation_year, is_active, registration_date, last_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`,
		s.UserID, s.FullName, s.Course, s.Specialization, pq.Array(s.Skills), s.WorkExperience, s.PortfolioLink, s.ContactNumber, s.Email, s.GPA, s.University, s.GraduationYear, s.Active, s.RegisteredAt, s.UpdatedAt).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "student profile already exists", err)
		}
		if isCheckViolation(err) {
			return nil, common.NewValidationError("invalid student", map[string]string{"gpa": "gpa must be between 0.0 and 4.0"})
		}
		return nil, common.NewError(common.CodeInternal, "failed to create student", err)
	}
	return &s, nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*student.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*student.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE user_id = $1`, userID)
	return scanStudent(row)
}

// Update is a whole-record overwrite of the editable fields; last_update is
// always refreshed.
func (r *StudentRepository) Update(ctx context.Context, s student.Student) (*student.Student, error) {
	s.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE students SET full_name = $1, course = $2, specialization = $3, skills = $4, work_experience = $5, portfolio_link = $6, contact_number = $7, email = $8, gpa = $9, university = $10, graduation_year = $11, is_active = $12, last_update = $13
		WHERE id = $14`,
		s.FullName, s.Course, s.Specialization, pq.Array(s.Skills), s.WorkExperience, s.PortfolioLink, s.ContactNumber, s.Email, s.GPA, s.University, s.GraduationYear, s.Active, s.UpdatedAt, s.ID)
	if err != nil {
		if isCheckViolation(err) {
			return nil, common.NewValidationError("invalid student", map[string]string{"gpa": "gpa must be between 0.0 and 4.0"})
		}
		return nil, common.NewError(common.CodeInternal, "failed to update student", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "student not found", sql.ErrNoRows)
	}
	return &s, nil
}

// Delete removes the row; applications.student_id carries ON DELETE SET NULL
// so dependent applications are detached, not deleted.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete student", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "student not found", sql.ErrNoRows)
	}
	return nil
}

func (r *StudentRepository) ListAll(ctx context.Context) ([]student.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY registration_date DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list students", err)
	}
	defer rows.Close()
	var items []student.Student
	for rows.Next() {
		var s student.Student
		if err := rows.Scan(&s.ID, &s.UserID, &s.FullName, &s.Course, &s.Specialization, pq.Array(&s.Skills), &s.WorkExperience, &s.PortfolioLink, &s.ContactNumber, &s.Email, &s.GPA, &s.University, &s.GraduationYear, &s.Active, &s.RegisteredAt, &s.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan student", err)
		}
		items = append(items, s)
	}
	return items, nil
}

func scanStudent(row *sql.Row) (*student.Student, error) {
	var s student.Student
	if err := row.Scan(&s.ID, &s.UserID, &s.FullName, &s.Course, &s.Specialization, pq.Array(&s.Skills), &s.WorkExperience, &s.PortfolioLink, &s.ContactNumber, &s.Email, &s.GPA, &s.University, &s.GraduationYear, &s.Active, &s.RegisteredAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "student not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load student", err)
	}
	return &s, nil
}
