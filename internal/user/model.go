package user

import (
	"time"
)

const (
	UserTypeApplicant = "applicant"
	UserTypeRecruiter = "recruiter"
)

type User struct {
	ID                   string
	Email                string
	Name                 string
	Type                 string
	FCMToken             string
	NotificationsEnabled bool
	CreatedAt            time.Time
	CreatedAtHumanised   string
}

func (u User) IsRecruiter() bool {
	return u.Type == UserTypeRecruiter
}

func (u User) IsApplicant() bool {
	return u.Type == UserTypeApplicant
}
