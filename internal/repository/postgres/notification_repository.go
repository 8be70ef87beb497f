package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/notification"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (*notification.Notification, error) {
	n.CreatedAt = time.Now().UTC()
	if n.Type == "" {
		n.Type = notification.TypeInfo
	}
	err := r.db.QueryRowContext(ctx, `INSERT INTO notifications (user_id, title, message, is_read, notification_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		n.UserID, n.Title, n.Message, n.Read, n.Type, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create notification", err)
	}
	return &n, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*notification.Notification, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, user_id, title, message, is_read, notification_type, created_at FROM notifications WHERE id = $1`, id)
	var n notification.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Read, &n.Type, &n.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "notification not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load notification", err)
	}
	return &n, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, title, message, is_read, notification_type, created_at FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list notifications", err)
	}
	return collectNotifications(rows)
}

func (r *NotificationRepository) ListRecent(ctx context.Context, limit int) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, title, message, is_read, notification_type, created_at FROM notifications ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list notifications", err)
	}
	return collectNotifications(rows)
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update notification", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "notification not found", sql.ErrNoRows)
	}
	return nil
}

func collectNotifications(rows *sql.Rows) ([]notification.Notification, error) {
	defer rows.Close()
	var items []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Read, &n.Type, &n.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan notification", err)
		}
		items = append(items, n)
	}
	return items, nil
}
