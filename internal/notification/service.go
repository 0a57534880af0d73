package notification

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdori/job-board/internal/application"
	"github.com/jobdori/job-board/internal/user"
)

type notificationStore interface {
	Create(n *Notification) error
}

type userGetter interface {
	GetUserByID(id string) (user.User, error)
}

type pushSender interface {
	SendPush(fcmToken, title, body string, data Payload) error
}

// Service persists a notification record and then attempts push delivery.
// Every failure ends up in the log and nowhere else: the status change
// this rides on has already been committed by the time we run.
type Service struct {
	store  notificationStore
	users  userGetter
	push   pushSender
	logger zerolog.Logger
}

func NewService(store notificationStore, users userGetter, push pushSender) *Service {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
	return &Service{store: store, users: users, push: push, logger: logger}
}

// NotifyStatusChange implements application.Notifier.
func (s *Service) NotifyStatusChange(userID, applicationID, jobTitle string, oldStatus, newStatus application.Status) {
	recipient, err := s.users.GetUserByID(userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("status change notification skipped: unknown recipient")
		return
	}

	title := jobTitle
	body := fmt.Sprintf("Your application status changed from %q to %q.", application.Labels[oldStatus], application.Labels[newStatus])
	payload := Payload{
		ApplicationID: applicationID,
		JobTitle:      jobTitle,
		OldStatus:     string(oldStatus),
		NewStatus:     string(newStatus),
		Link:          "/applications/" + applicationID,
	}

	n := Notification{
		UserID:  userID,
		Type:    TypeStatusChange,
		Title:   title,
		Body:    body,
		Payload: payload,
	}
	if err := s.store.Create(&n); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("application_id", applicationID).Msg("unable to persist status change notification")
		return
	}

	if recipient.FCMToken == "" {
		s.logger.Info().Str("user_id", userID).Msg("push skipped: no registered device token")
		return
	}
	if !recipient.NotificationsEnabled {
		s.logger.Info().Str("user_id", userID).Msg("push skipped: notifications disabled by user")
		return
	}
	if err := s.push.SendPush(recipient.FCMToken, title, body, payload); err != nil {
		// status already persisted, delivery is best-effort
		s.logger.Warn().Err(err).Str("user_id", userID).Str("application_id", applicationID).Msg("push delivery failed")
	}
}
