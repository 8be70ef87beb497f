package vacancy

import "time"

// Vacancy is an employer posting. SalaryRange is opaque text and is never
// parsed. Inactive vacancies stay in storage but are excluded from the
// active listing; rows are never physically removed while applications
// reference them.
type Vacancy struct {
	ID             int64      `json:"id"`
	CompanyName    string     `json:"company_name"`
	Position       string     `json:"position"`
	Specialization string     `json:"specialization,omitempty"`
	RequiredCourse int        `json:"required_course,omitempty"`
	SalaryRange    string     `json:"salary_range,omitempty"`
	Description    string     `json:"description,omitempty"`
	Requirements   string     `json:"requirements,omitempty"`
	ContactEmail   string     `json:"contact_email,omitempty"`
	Deadline       *time.Time `json:"application_deadline,omitempty"`
	Active         bool       `json:"is_active"`
	PostedAt       time.Time  `json:"posted_date"`
}
