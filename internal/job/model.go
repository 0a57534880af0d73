package job

import (
	"time"
)

const (
	PublicationStateDraft     = "draft"
	PublicationStatePublished = "published"
)

type JobPosting struct {
	ID                 string
	UserID             string
	Title              string
	Company            string
	Location           string
	Description        string
	WageText           string
	PublicationState   string
	IsClosed           bool
	Slug               string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedAtHumanised string
}

// IsOpen reports whether the posting can still receive applications.
func (j JobPosting) IsOpen() bool {
	return j.PublicationState == PublicationStatePublished && !j.IsClosed
}

type JobRq struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	WageText    string `json:"wage_text"`
}

type JobRqUpdate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	WageText    string `json:"wage_text"`
}
