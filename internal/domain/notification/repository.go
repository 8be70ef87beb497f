package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n Notification) (*Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	ListRecent(ctx context.Context, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Notification, error)
}
