package employment

import "time"

// Report records a realized hire. Immutable once created. Salary is opaque
// text, mirroring the vacancy salary range.
type Report struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	CompanyName string    `json:"company_name"`
	Position    string    `json:"position"`
	EmployedAt  time.Time `json:"employment_date"`
	Salary      string    `json:"salary,omitempty"`
	ReportedAt  time.Time `json:"report_date"`
}

// ReportView is a report left-joined with its student for listings; the
// student fields are nil when the student row has been removed.
type ReportView struct {
	Report
	StudentName           *string `json:"full_name"`
	StudentSpecialization *string `json:"specialization"`
}
