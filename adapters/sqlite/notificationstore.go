package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alvinosh/nestjs-recurly-sub000/domain/webhook"
	"github.com/alvinosh/nestjs-recurly-sub000/ports"
)

// notificationStore implements ports.NotificationStore using SQLite.
type notificationStore struct {
	db *sql.DB
}

// NewNotificationStore creates a new SQLite notification store.
func NewNotificationStore(db *DB) ports.NotificationStore {
	return &notificationStore{db: db.DB}
}

const notificationColumns = `id, object_type, event_type, site_id, account_code, uuid,
		       event_time, received_at, payload`

func (s *notificationStore) Save(ctx context.Context, n webhook.Notification) error {
	var eventTime sql.NullTime
	if !n.EventTime.IsZero() {
		eventTime = sql.NullTime{Time: n.EventTime.UTC(), Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, n.ID, n.ObjectType, n.EventType, n.SiteID, n.AccountCode, n.UUID,
		eventTime, n.ReceivedAt.UTC(), string(n.Payload))
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	if affected == 0 {
		return ports.ErrDuplicate
	}
	return nil
}

func (s *notificationStore) Get(ctx context.Context, id string) (webhook.Notification, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE id = ?
	`, id)

	n, err := scanNotification(row)
	if errors.Is(err, sql.ErrNoRows) {
		return webhook.Notification{}, ports.ErrNotFound
	}
	return n, err
}

func (s *notificationStore) List(ctx context.Context, limit int) ([]webhook.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		ORDER BY received_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var out []webhook.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(row scanner) (webhook.Notification, error) {
	var (
		n         webhook.Notification
		eventTime sql.NullTime
		payload   string
	)
	err := row.Scan(&n.ID, &n.ObjectType, &n.EventType, &n.SiteID, &n.AccountCode, &n.UUID,
		&eventTime, &n.ReceivedAt, &payload)
	if err != nil {
		return webhook.Notification{}, err
	}
	if eventTime.Valid {
		n.EventTime = eventTime.Time.UTC()
	}
	n.ReceivedAt = n.ReceivedAt.UTC()
	n.Payload = []byte(payload)
	return n, nil
}
