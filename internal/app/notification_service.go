package app

import (
	"context"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/notification"
	"gradrecruit/internal/domain/user"
)

type NotificationService struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) ListRecent(ctx context.Context, limit int) ([]notification.Notification, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}

// MarkRead flips the read flag, the only mutation a notification supports.
// Only the addressee or an admin may flip it.
func (s *NotificationService) MarkRead(ctx context.Context, id, requesterID int64, role user.Role) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.UserID != requesterID && role != user.RoleAdmin {
		return common.NewError(common.CodeForbidden, "notification belongs to another user", nil)
	}
	return s.repo.MarkRead(ctx, id)
}
