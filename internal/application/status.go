package application

// Status is the application review status. It always starts at submitted.
type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
	StatusInterview Status = "interview"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

var Statuses = []Status{StatusSubmitted, StatusReviewed, StatusInterview, StatusAccepted, StatusRejected}

// Labels are the user-facing names used when phrasing notifications.
var Labels = map[Status]string{
	StatusSubmitted: "submitted",
	StatusReviewed:  "under review",
	StatusInterview: "interview",
	StatusAccepted:  "accepted",
	StatusRejected:  "rejected",
}

func KnownStatus(s Status) bool {
	_, ok := Labels[s]
	return ok
}

// Transitions is the status transition table. The review workflow is
// human-operated so every transition is currently allowed, including
// backward ones. Tightening the workflow later is an edit here, not a
// rewrite.
var Transitions = map[Status]map[Status]bool{
	StatusSubmitted: {StatusSubmitted: true, StatusReviewed: true, StatusInterview: true, StatusAccepted: true, StatusRejected: true},
	StatusReviewed:  {StatusSubmitted: true, StatusReviewed: true, StatusInterview: true, StatusAccepted: true, StatusRejected: true},
	StatusInterview: {StatusSubmitted: true, StatusReviewed: true, StatusInterview: true, StatusAccepted: true, StatusRejected: true},
	StatusAccepted:  {StatusSubmitted: true, StatusReviewed: true, StatusInterview: true, StatusAccepted: true, StatusRejected: true},
	StatusRejected:  {StatusSubmitted: true, StatusReviewed: true, StatusInterview: true, StatusAccepted: true, StatusRejected: true},
}

func CanTransition(from, to Status) bool {
	allowed, ok := Transitions[from]
	if !ok {
		return false
	}
	return allowed[to]
}
