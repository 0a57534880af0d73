package savedjobs

import (
	"time"
)

type SavedJob struct {
	UserID   string
	JobID    string
	Title    string
	Company  string
	Location string
	Slug     string
	IsClosed bool
	SavedAt  time.Time
}
