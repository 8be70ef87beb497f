package app

import (
	"context"
	"fmt"
	"strings"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/notification"
	"gradrecruit/internal/domain/student"
)

type StudentService struct {
	repo          student.Repository
	notifications notification.Repository
	adminUserID   int64
}

func NewStudentService(repo student.Repository, notifications notification.Repository, adminUserID int64) *StudentService {
	return &StudentService{repo: repo, notifications: notifications, adminUserID: adminUserID}
}

// StudentFilter is applied in memory over the full listing; the repository
// performs no server-side filtering.
type StudentFilter struct {
	Name           string
	Course         int
	Specialization string
}

func (s *StudentService) UpsertProfile(ctx context.Context, userID int64, profile student.Student) (*student.Student, error) {
	if err := validateStudent(profile); err != nil {
		return nil, err
	}
	profile.UserID = &userID

	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil && !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	if err == nil {
		profile.ID = existing.ID
		profile.RegisteredAt = existing.RegisteredAt
		// the active flag is not client-editable; an omitted field must not
		// deactivate the profile
		profile.Active = existing.Active
		updated, err := s.repo.Update(ctx, profile)
		if err != nil {
			return nil, err
		}
		notify(ctx, s.notifications, s.adminUserID, notification.TypeInfo,
			"Profile updated", fmt.Sprintf("Student %s updated their profile.", updated.FullName))
		return updated, nil
	}

	profile.Active = true
	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}
	notify(ctx, s.notifications, s.adminUserID, notification.TypeInfo,
		"New student profile", fmt.Sprintf("Student %s registered a profile.", created.FullName))
	return created, nil
}

func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*student.Student, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *StudentService) Get(ctx context.Context, id int64) (*student.Student, error) {
	return s.repo.GetByID(ctx, id)
}

// List fetches everything most-recent-first and filters in memory.
func (s *StudentService) List(ctx context.Context, filter StudentFilter) ([]student.Student, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Name == "" && filter.Course == 0 && filter.Specialization == "" {
		return items, nil
	}
	name := strings.ToLower(filter.Name)
	filtered := make([]student.Student, 0, len(items))
	for _, item := range items {
		if name != "" && !strings.Contains(strings.ToLower(item.FullName), name) {
			continue
		}
		if filter.Course != 0 && item.Course != filter.Course {
			continue
		}
		if filter.Specialization != "" && !strings.EqualFold(item.Specialization, filter.Specialization) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// Delete is the explicit admin action; dependent applications are detached
// by the storage layer, never deleted.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateStudent(profile student.Student) error {
	fields := map[string]string{}
	if strings.TrimSpace(profile.FullName) == "" {
		fields["full_name"] = "full name is required"
	}
	if profile.Course <= 0 {
		fields["course"] = "course must be a positive integer"
	}
	if profile.GPA != nil && (*profile.GPA < 0.0 || *profile.GPA > 4.0) {
		fields["gpa"] = "gpa must be between 0.0 and 4.0"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid student profile", fields)
	}
	return nil
}
