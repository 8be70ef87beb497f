package student

import "time"

// Student is a candidate profile. GPA and GraduationYear are optional;
// a nil GPA is excluded from dashboard averages rather than read as zero.
type Student struct {
	ID             int64     `json:"id"`
	UserID         *int64    `json:"user_id,omitempty"`
	FullName       string    `json:"full_name"`
	Course         int       `json:"course"`
	Specialization string    `json:"specialization"`
	Skills         []string  `json:"skills"`
	WorkExperience string    `json:"work_experience,omitempty"`
	PortfolioLink  string    `json:"portfolio_link,omitempty"`
	ContactNumber  string    `json:"contact_number,omitempty"`
	Email          string    `json:"email"`
	GPA            *float64  `json:"gpa,omitempty"`
	University     string    `json:"university,omitempty"`
	GraduationYear *int      `json:"graduation_year,omitempty"`
	Active         bool      `json:"is_active"`
	RegisteredAt   time.Time `json:"registration_date"`
	UpdatedAt      time.Time `json:"last_update"`
}
