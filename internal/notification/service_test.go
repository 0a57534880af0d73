package notification

import (
	"errors"
	"testing"

	"github.com/jobdori/job-board/internal/application"
	"github.com/jobdori/job-board/internal/user"
)

type fakeNotificationStore struct {
	created   []Notification
	createErr error
}

func (s *fakeNotificationStore) Create(n *Notification) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, *n)
	return nil
}

type fakeUserGetter struct {
	users map[string]user.User
}

func (g *fakeUserGetter) GetUserByID(id string) (user.User, error) {
	u, ok := g.users[id]
	if !ok {
		return user.User{}, errors.New("user not found")
	}
	return u, nil
}

type fakePushSender struct {
	sent    []string
	sendErr error
}

func (p *fakePushSender) SendPush(fcmToken, title, body string, data Payload) error {
	p.sent = append(p.sent, fcmToken)
	return p.sendErr
}

func applicantWithDevice() user.User {
	return user.User{
		ID:                   "applicant-1",
		Email:                "minsoo@example.com",
		Type:                 user.UserTypeApplicant,
		FCMToken:             "device-token",
		NotificationsEnabled: true,
	}
}

func TestNotifyStatusChangePersistsAndPushes(t *testing.T) {
	store := &fakeNotificationStore{}
	users := &fakeUserGetter{users: map[string]user.User{"applicant-1": applicantWithDevice()}}
	push := &fakePushSender{}
	service := NewService(store, users, push)

	service.NotifyStatusChange("applicant-1", "app-1", "Backend Engineer", application.StatusSubmitted, application.StatusReviewed)

	if len(store.created) != 1 {
		t.Fatalf("expected 1 persisted notification, got %d", len(store.created))
	}
	n := store.created[0]
	if n.Type != TypeStatusChange {
		t.Errorf("expected status change type, got %q", n.Type)
	}
	if n.Title != "Backend Engineer" {
		t.Errorf("expected job title as the notification title, got %q", n.Title)
	}
	if n.Payload.OldStatus != "submitted" || n.Payload.NewStatus != "reviewed" {
		t.Errorf("expected statuses in the payload, got %+v", n.Payload)
	}
	if n.Payload.Link != "/applications/app-1" {
		t.Errorf("expected application link in the payload, got %q", n.Payload.Link)
	}
	if len(push.sent) != 1 || push.sent[0] != "device-token" {
		t.Fatalf("expected one push to the registered device, got %+v", push.sent)
	}
}

func TestNotifyStatusChangeSwallowsPushFailure(t *testing.T) {
	store := &fakeNotificationStore{}
	users := &fakeUserGetter{users: map[string]user.User{"applicant-1": applicantWithDevice()}}
	push := &fakePushSender{sendErr: errors.New("relay unreachable")}
	service := NewService(store, users, push)

	// must not panic and the persisted record must survive
	service.NotifyStatusChange("applicant-1", "app-1", "Backend Engineer", application.StatusSubmitted, application.StatusRejected)

	if len(store.created) != 1 {
		t.Fatalf("expected notification persisted despite push failure, got %d", len(store.created))
	}
}

func TestNotifyStatusChangeSkipsPushWithoutDevice(t *testing.T) {
	noDevice := applicantWithDevice()
	noDevice.FCMToken = ""
	store := &fakeNotificationStore{}
	users := &fakeUserGetter{users: map[string]user.User{"applicant-1": noDevice}}
	push := &fakePushSender{}
	service := NewService(store, users, push)

	service.NotifyStatusChange("applicant-1", "app-1", "Backend Engineer", application.StatusSubmitted, application.StatusReviewed)

	if len(store.created) != 1 {
		t.Fatalf("expected notification persisted, got %d", len(store.created))
	}
	if len(push.sent) != 0 {
		t.Fatalf("expected no push without a device token, got %d", len(push.sent))
	}
}

func TestNotifyStatusChangeRespectsOptOut(t *testing.T) {
	optedOut := applicantWithDevice()
	optedOut.NotificationsEnabled = false
	store := &fakeNotificationStore{}
	users := &fakeUserGetter{users: map[string]user.User{"applicant-1": optedOut}}
	push := &fakePushSender{}
	service := NewService(store, users, push)

	service.NotifyStatusChange("applicant-1", "app-1", "Backend Engineer", application.StatusSubmitted, application.StatusReviewed)

	if len(store.created) != 1 {
		t.Fatalf("expected notification persisted, got %d", len(store.created))
	}
	if len(push.sent) != 0 {
		t.Fatalf("expected no push for an opted-out user, got %d", len(push.sent))
	}
}

func TestNotifyStatusChangeUnknownRecipient(t *testing.T) {
	store := &fakeNotificationStore{}
	users := &fakeUserGetter{users: map[string]user.User{}}
	push := &fakePushSender{}
	service := NewService(store, users, push)

	service.NotifyStatusChange("ghost", "app-1", "Backend Engineer", application.StatusSubmitted, application.StatusReviewed)

	if len(store.created) != 0 {
		t.Fatalf("expected nothing persisted for an unknown recipient, got %d", len(store.created))
	}
	if len(push.sent) != 0 {
		t.Fatalf("expected no push for an unknown recipient, got %d", len(push.sent))
	}
}
