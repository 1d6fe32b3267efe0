package repository

import (
	"context"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByTraveler(ctx context.Context, travelerID string) ([]domain.Notification, error)
}

type PGNotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) NotificationRepository {
	return &PGNotificationRepository{db: db}
}

func (r *PGNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	err := r.db.QueryRow(ctx, `INSERT INTO notifications (traveler_id, message, channel)
		VALUES ($1, $2, $3)
		RETURNING notification_id, created_at`, n.TravelerID, n.Message, n.Channel).
		Scan(&n.ID, &n.CreatedAt)
	return classify("create notification", err)
}

func (r *PGNotificationRepository) ListByTraveler(ctx context.Context, travelerID string) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, `SELECT notification_id, traveler_id, message, channel, created_at
		FROM notifications
		WHERE traveler_id = $1
		ORDER BY created_at, notification_id`, travelerID)
	if err != nil {
		return nil, classify("list notifications", err)
	}
	notifications, err := collect(rows, func(row pgx.Row, n *domain.Notification) error {
		return row.Scan(&n.ID, &n.TravelerID, &n.Message, &n.Channel, &n.CreatedAt)
	})
	return notifications, classify("list notifications", err)
}

var _ NotificationRepository = (*PGNotificationRepository)(nil)
