package postgres

import (
	"context"
	"database/sql"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/stats"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect reads every dashboard figure in a single statement. AVG(gpa)
// ignores NULL rows and comes back NULL when no student has a GPA; that is
// surfaced as a nil pointer, not zero.
func (r *StatsRepository) Collect(ctx context.Context) (*stats.Statistics, error) {
	row := r.db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM students) AS total_students,
		(SELECT COUNT(*) FROM students WHERE is_active = TRUE) AS active_students,
		(SELECT COUNT(*) FROM vacancies WHERE is_active = TRUE) AS active_vacancies,
		(SELECT COUNT(*) FROM applications) AS total_applications,
		(SELECT COUNT(*) FROM applications WHERE status = 'accepted') AS accepted_applications,
		(SELECT COUNT(*) FROM applications WHERE status = 'pending') AS pending_applications,
		(SELECT COUNT(*) FROM employment_reports) AS employed_students,
		(SELECT COUNT(*) FROM notifications WHERE is_read = FALSE) AS unread_notifications,
		(SELECT AVG(gpa) FROM students WHERE gpa IS NOT NULL) AS avg_gpa`)

	return scanStatistics(row)
}

type statsRow interface {
	Scan(dest ...any) error
}

func scanStatistics(row statsRow) (*stats.Statistics, error) {
	var result stats.Statistics
	var avg sql.NullFloat64
	if err := row.Scan(&result.TotalStudents, &result.ActiveStudents, &result.ActiveVacancies,
		&result.TotalApplications, &result.AcceptedApplications, &result.PendingApplications,
		&result.EmployedStudents, &result.UnreadNotifications, &avg); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to collect statistics", err)
	}
	if avg.Valid {
		result.AverageGPA = &avg.Float64
	}
	return &result, nil
}
