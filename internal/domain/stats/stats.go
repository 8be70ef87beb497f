package stats

import "context"

// Statistics is the dashboard rollup computed from current storage state.
// Counts are zero on empty storage. AverageGPA is nil when no student has a
// GPA; it is never coerced to zero.
type Statistics struct {
	TotalStudents        int      `json:"total_students"`
	ActiveStudents       int      `json:"active_students"`
	ActiveVacancies      int      `json:"active_vacancies"`
	TotalApplications    int      `json:"total_applications"`
	AcceptedApplications int      `json:"accepted_applications"`
	PendingApplications  int      `json:"pending_applications"`
	EmployedStudents     int      `json:"employed_students"`
	UnreadNotifications  int      `json:"unread_notifications"`
	AverageGPA           *float64 `json:"avg_gpa"`
}

type Repository interface {
	Collect(ctx context.Context) (*Statistics, error)
}
