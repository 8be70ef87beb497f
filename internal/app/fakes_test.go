package app

import (
	"context"
	"sync"
	"time"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/application"
	"gradrecruit/internal/domain/employment"
	"gradrecruit/internal/domain/notification"
	"gradrecruit/internal/domain/student"
	"gradrecruit/internal/domain/user"
	"gradrecruit/internal/domain/vacancy"
)

type fakeStudentRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*student.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1, byID: make(map[int64]*student.Student)}
}

func (r *fakeStudentRepo) Create(ctx context.Context, s student.Student) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.UserID != nil {
		for _, existing := range r.byID {
			if existing.UserID != nil && *existing.UserID == *s.UserID {
				return nil, common.NewError(common.CodeConflict, "student profile already exists", nil)
			}
		}
	}
	s.ID = r.nextID
	r.nextID++
	s.RegisteredAt = time.Now().UTC()
	s.UpdatedAt = s.RegisteredAt
	r.byID[s.ID] = &s
	return cloneStudent(&s), nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile := r.byID[id]
	if profile == nil {
		return nil, common.NewError(common.CodeNotFound, "student not found", nil)
	}
	return cloneStudent(profile), nil
}

func (r *fakeStudentRepo) GetByUserID(ctx context.Context, userID int64) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, profile := range r.byID {
		if profile.UserID != nil && *profile.UserID == userID {
			return cloneStudent(profile), nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "student not found", nil)
}

func (r *fakeStudentRepo) Update(ctx context.Context, s student.Student) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[s.ID] == nil {
		return nil, common.NewError(common.CodeNotFound, "student not found", nil)
	}
	s.UpdatedAt = time.Now().UTC()
	r.byID[s.ID] = &s
	return cloneStudent(&s), nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[id] == nil {
		return common.NewError(common.CodeNotFound, "student not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeStudentRepo) ListAll(ctx context.Context) ([]student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]student.Student, 0, len(r.byID))
	for _, profile := range r.byID {
		items = append(items, *cloneStudent(profile))
	}
	return items, nil
}

func cloneStudent(s *student.Student) *student.Student {
	copy := *s
	copy.Skills = append([]string(nil), s.Skills...)
	if s.UserID != nil {
		id := *s.UserID
		copy.UserID = &id
	}
	if s.GPA != nil {
		gpa := *s.GPA
		copy.GPA = &gpa
	}
	return &copy
}

type fakeVacancyRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*vacancy.Vacancy
}

func newFakeVacancyRepo() *fakeVacancyRepo {
	return &fakeVacancyRepo{nextID: 1, byID: make(map[int64]*vacancy.Vacancy)}
}

func (r *fakeVacancyRepo) Create(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.nextID
	r.nextID++
	v.PostedAt = time.Now().UTC()
	r.byID[v.ID] = &v
	copy := v
	return &copy, nil
}

func (r *fakeVacancyRepo) GetByID(ctx context.Context, id int64) (*vacancy.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.byID[id]
	if v == nil {
		return nil, common.NewError(common.CodeNotFound, "vacancy not found", nil)
	}
	copy := *v
	return &copy, nil
}

func (r *fakeVacancyRepo) Update(ctx context.Context, v vacancy.Vacancy) (*vacancy.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[v.ID] == nil {
		return nil, common.NewError(common.CodeNotFound, "vacancy not found", nil)
	}
	r.byID[v.ID] = &v
	copy := v
	return &copy, nil
}

func (r *fakeVacancyRepo) SetActive(ctx context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.byID[id]
	if v == nil {
		return common.NewError(common.CodeNotFound, "vacancy not found", nil)
	}
	v.Active = active
	return nil
}

func (r *fakeVacancyRepo) ListAll(ctx context.Context) ([]vacancy.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]vacancy.Vacancy, 0, len(r.byID))
	for _, v := range r.byID {
		items = append(items, *v)
	}
	return items, nil
}

func (r *fakeVacancyRepo) ListActive(ctx context.Context) ([]vacancy.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]vacancy.Vacancy, 0, len(r.byID))
	for _, v := range r.byID {
		if v.Active {
			items = append(items, *v)
		}
	}
	return items, nil
}

type fakeApplicationRepo struct {
	mu        sync.Mutex
	nextID    int64
	byID      map[int64]*application.Application
	students  *fakeStudentRepo
	vacancies *fakeVacancyRepo
}

func newFakeApplicationRepo(students *fakeStudentRepo, vacancies *fakeVacancyRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{nextID: 1, byID: make(map[int64]*application.Application), students: students, vacancies: vacancies}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app.ID = r.nextID
	r.nextID++
	if app.Status == "" {
		app.Status = application.StatusPending
	}
	app.AppliedAt = time.Now().UTC()
	r.byID[app.ID] = &app
	copy := app
	return &copy, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copy := *app
	return &copy, nil
}

func (r *fakeApplicationRepo) FindByStudentAndVacancy(ctx context.Context, studentID, vacancyID int64) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.byID {
		if app.StudentID == studentID && app.VacancyID == vacancyID {
			copy := *app
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id int64, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	copy := *app
	return &copy, nil
}

func (r *fakeApplicationRepo) ListByStudent(ctx context.Context, studentID int64) ([]application.StudentView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	views := make([]application.StudentView, 0)
	for _, app := range r.byID {
		if app.StudentID != studentID {
			continue
		}
		vac, err := r.vacancies.GetByID(ctx, app.VacancyID)
		if err != nil {
			continue
		}
		views = append(views, application.StudentView{
			ID:          app.ID,
			VacancyID:   app.VacancyID,
			Status:      app.Status,
			CoverLetter: app.CoverLetter,
			AppliedAt:   app.AppliedAt,
			Position:    vac.Position,
			CompanyName: vac.CompanyName,
			SalaryRange: vac.SalaryRange,
		})
	}
	return views, nil
}

func (r *fakeApplicationRepo) ListAll(ctx context.Context) ([]application.AuditView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	views := make([]application.AuditView, 0, len(r.byID))
	for _, app := range r.byID {
		views = append(views, r.auditView(ctx, app))
	}
	return views, nil
}

func (r *fakeApplicationRepo) ListRecent(ctx context.Context, limit int) ([]application.AuditView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	views := make([]application.AuditView, 0)
	for _, app := range r.byID {
		view := r.auditView(ctx, app)
		if view.StudentName == nil || view.Position == nil {
			continue
		}
		views = append(views, view)
		if len(views) == limit {
			break
		}
	}
	return views, nil
}

func (r *fakeApplicationRepo) auditView(ctx context.Context, app *application.Application) application.AuditView {
	view := application.AuditView{
		ID:          app.ID,
		Status:      app.Status,
		CoverLetter: app.CoverLetter,
		AppliedAt:   app.AppliedAt,
	}
	if app.StudentID != 0 {
		view.StudentID = &app.StudentID
		if profile, err := r.students.GetByID(ctx, app.StudentID); err == nil {
			view.StudentName = &profile.FullName
			view.StudentEmail = &profile.Email
			view.ContactNumber = &profile.ContactNumber
		}
	}
	view.VacancyID = &app.VacancyID
	if vac, err := r.vacancies.GetByID(ctx, app.VacancyID); err == nil {
		view.Position = &vac.Position
		view.CompanyName = &vac.CompanyName
		view.SalaryRange = &vac.SalaryRange
	}
	return view
}

type fakeNotificationRepo struct {
	mu        sync.Mutex
	nextID    int64
	created   []notification.Notification
	createErr error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (*notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	n.ID = r.nextID
	r.nextID++
	n.CreatedAt = time.Now().UTC()
	r.created = append(r.created, n)
	copy := n
	return &copy, nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]notification.Notification, 0)
	for _, n := range r.created {
		if n.UserID == userID {
			items = append(items, n)
		}
	}
	return items, nil
}

func (r *fakeNotificationRepo) ListRecent(ctx context.Context, limit int) ([]notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := append([]notification.Notification(nil), r.created...)
	if len(items) > limit {
		items = items[len(items)-limit:]
	}
	return items, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.created {
		if r.created[i].ID == id {
			r.created[i].Read = true
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "notification not found", nil)
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id int64) (*notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.created {
		if n.ID == id {
			copy := n
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "notification not found", nil)
}

func (r *fakeNotificationRepo) forUser(userID int64) []notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]notification.Notification, 0)
	for _, n := range r.created {
		if n.UserID == userID {
			items = append(items, n)
		}
	}
	return items
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byID: make(map[int64]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Username == account.Username || existing.Email == account.Email {
			return nil, common.NewError(common.CodeConflict, "username or email already registered", nil)
		}
	}
	account.ID = r.nextID
	r.nextID++
	account.CreatedAt = time.Now().UTC()
	r.byID[account.ID] = &account
	copy := account
	return &copy, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copy := *account
	return &copy, nil
}

func (r *fakeUserRepo) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.byID {
		if account.Username == login || account.Email == login {
			copy := *account
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

type fakeEmploymentRepo struct {
	mu      sync.Mutex
	nextID  int64
	reports []employment.Report
}

func newFakeEmploymentRepo() *fakeEmploymentRepo {
	return &fakeEmploymentRepo{nextID: 1}
}

func (r *fakeEmploymentRepo) Create(ctx context.Context, report employment.Report) (*employment.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report.ID = r.nextID
	r.nextID++
	r.reports = append(r.reports, report)
	copy := report
	return &copy, nil
}

func (r *fakeEmploymentRepo) ListAll(ctx context.Context) ([]employment.ReportView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	views := make([]employment.ReportView, 0, len(r.reports))
	for _, report := range r.reports {
		views = append(views, employment.ReportView{Report: report})
	}
	return views, nil
}
