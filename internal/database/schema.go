package database

import "database/sql"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT UNIQUE REFERENCES users (id),
		full_name TEXT NOT NULL,
		course INT NOT NULL,
		specialization TEXT NOT NULL DEFAULT '',
		skills TEXT[] NOT NULL DEFAULT '{}',
		work_experience TEXT NOT NULL DEFAULT '',
		portfolio_link TEXT NOT NULL DEFAULT '',
		contact_number TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		gpa DOUBLE PRECISION CHECK (gpa >= 0.0 AND gpa <= 4.0),
		university TEXT NOT NULL DEFAULT '',
		graduation_year INT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		registration_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_update TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS vacancies (
		id BIGSERIAL PRIMARY KEY,
		company_name TEXT NOT NULL,
		position TEXT NOT NULL,
		specialization TEXT NOT NULL DEFAULT '',
		required_course INT NOT NULL DEFAULT 0,
		salary_range TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		requirements TEXT NOT NULL DEFAULT '',
		contact_email TEXT NOT NULL DEFAULT '',
		application_deadline DATE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		posted_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT REFERENCES students (id) ON DELETE SET NULL,
		vacancy_id BIGINT REFERENCES vacancies (id),
		application_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		status TEXT NOT NULL DEFAULT 'pending',
		cover_letter TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		notification_type TEXT NOT NULL DEFAULT 'info',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS employment_reports (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT REFERENCES students (id) ON DELETE SET NULL,
		company_name TEXT NOT NULL,
		position TEXT NOT NULL,
		employment_date DATE NOT NULL,
		salary TEXT NOT NULL DEFAULT '',
		report_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// ApplySchema creates the tables when missing. Applications reference
// students with ON DELETE SET NULL so an admin delete detaches dependent
// applications instead of removing them.
func ApplySchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
