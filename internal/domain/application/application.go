package application

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type Application struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	VacancyID   int64     `json:"vacancy_id"`
	Status      Status    `json:"status"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	AppliedAt   time.Time `json:"application_date"`
}

// StudentView is an application joined with its vacancy, denormalized so a
// student's listing needs no second round trip.
type StudentView struct {
	ID          int64     `json:"id"`
	VacancyID   int64     `json:"vacancy_id"`
	Status      Status    `json:"status"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	AppliedAt   time.Time `json:"application_date"`
	Position    string    `json:"position"`
	CompanyName string    `json:"company_name"`
	SalaryRange string    `json:"salary_range,omitempty"`
}

// AuditView is a left-joined audit row. Student and vacancy fields are nil
// when the referenced row has been detached; the row itself is still listed.
type AuditView struct {
	ID            int64     `json:"id"`
	StudentID     *int64    `json:"student_id"`
	VacancyID     *int64    `json:"vacancy_id"`
	Status        Status    `json:"status"`
	CoverLetter   string    `json:"cover_letter,omitempty"`
	AppliedAt     time.Time `json:"application_date"`
	StudentName   *string   `json:"full_name"`
	StudentEmail  *string   `json:"student_email"`
	ContactNumber *string   `json:"contact_number"`
	Position      *string   `json:"position"`
	CompanyName   *string   `json:"company_name"`
	SalaryRange   *string   `json:"salary_range"`
}
