package app

import (
	"context"

	"gradrecruit/internal/domain/notification"
)

// notify writes a notification as a fire-and-forget side effect: a failed
// write never fails the operation that triggered it.
func notify(ctx context.Context, repo notification.Repository, userID int64, ntype notification.Type, title, message string) {
	if repo == nil || userID == 0 {
		return
	}
	_, _ = repo.Create(ctx, notification.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    ntype,
	})
}
