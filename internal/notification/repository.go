package notification

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/segmentio/ksuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) Create(n *Notification) error {
	if n.ID == "" {
		notificationID, err := ksuid.NewRandom()
		if err != nil {
			return err
		}
		n.ID = notificationID.String()
	}
	n.CreatedAt = time.Now().UTC()
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO notification (id, user_id, notification_type, title, body, payload, read, created_at) VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)`,
		n.ID, n.UserID, n.Type, n.Title, n.Body, payload, n.CreatedAt,
	)
	return err
}

func (r *Repository) NotificationsForUser(userID string) ([]Notification, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, notification_type, title, body, payload, read, created_at FROM notification WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	notifications := []Notification{}
	for rows.Next() {
		var n Notification
		var payload []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body, &payload, &n.Read, &n.CreatedAt); err != nil {
			return notifications, err
		}
		if err := json.Unmarshal(payload, &n.Payload); err != nil {
			return notifications, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return notifications, err
	}
	return notifications, nil
}

func (r *Repository) MarkRead(notificationID, userID string) error {
	_, err := r.db.Exec(`UPDATE notification SET read = TRUE WHERE id = $1 AND user_id = $2`, notificationID, userID)
	return err
}
