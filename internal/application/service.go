package application

import (
	"database/sql"
	"errors"

	"github.com/jobdori/job-board/internal/job"
	"github.com/jobdori/job-board/internal/resume"
)

type applicationStore interface {
	Create(app *Application) error
	ExistsForUserAndJob(userID, jobID string) (bool, error)
	GetByID(appID string) (Application, error)
	ApplicationsForJob(jobID string) ([]Application, error)
	UpdateStatus(appID string, status Status) error
	MarkChecked(appID string) error
}

type jobStore interface {
	GetByID(jobID string) (job.JobPosting, error)
}

type resumeStore interface {
	GetByID(resumeID string) (resume.Resume, error)
}

// Notifier delivers the best-effort status-change side channel. It never
// returns an error: delivery problems belong to logs, not to callers.
type Notifier interface {
	NotifyStatusChange(userID, applicationID, jobTitle string, oldStatus, newStatus Status)
}

type Service struct {
	apps     applicationStore
	jobs     jobStore
	resumes  resumeStore
	notifier Notifier
}

func NewService(apps applicationStore, jobs jobStore, resumes resumeStore, notifier Notifier) *Service {
	return &Service{apps: apps, jobs: jobs, resumes: resumes, notifier: notifier}
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNotFound)
}

// Submit creates an application against an open posting, embedding a
// snapshot of the selected resume. At most one application per
// (applicant, job): checked here best-effort and enforced by the store.
func (s *Service) Submit(userID, jobID, resumeID string) (Application, error) {
	if userID == "" || jobID == "" || resumeID == "" {
		return Application{}, ErrResumeRequired
	}
	posting, err := s.jobs.GetByID(jobID)
	if err != nil {
		if isNotFound(err) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	if !posting.IsOpen() {
		return Application{}, ErrJobNotOpen
	}
	res, err := s.resumes.GetByID(resumeID)
	if err != nil {
		if isNotFound(err) {
			return Application{}, ErrResumeRequired
		}
		return Application{}, err
	}
	if res.UserID != userID {
		return Application{}, ErrResumeRequired
	}
	exists, err := s.apps.ExistsForUserAndJob(userID, jobID)
	if err != nil {
		return Application{}, err
	}
	if exists {
		return Application{}, ErrDuplicateSubmission
	}
	app := Application{
		UserID:   userID,
		JobID:    posting.ID,
		JobTitle: posting.Title,
		Company:  posting.Company,
		Resume:   SnapshotResume(res),
		Status:   StatusSubmitted,
	}
	if err := s.apps.Create(&app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// GetForViewer resolves whether the requester may read the application.
// The applicant and the owning job's poster may read; a missing
// application is ErrNotFound, a missing referenced job ErrDanglingJob,
// anyone else ErrForbidden.
func (s *Service) GetForViewer(requesterID, appID string) (Application, error) {
	app, err := s.apps.GetByID(appID)
	if err != nil {
		if isNotFound(err) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	if app.UserID == requesterID {
		return app, nil
	}
	posting, err := s.jobs.GetByID(app.JobID)
	if err != nil {
		if isNotFound(err) {
			return Application{}, ErrDanglingJob
		}
		return Application{}, err
	}
	if posting.UserID == requesterID {
		// first owner view flips the checked flag, best-effort
		if !app.IsChecked {
			if err := s.apps.MarkChecked(app.ID); err == nil {
				app.IsChecked = true
			}
		}
		return app, nil
	}
	return Application{}, ErrForbidden
}

// ApplicantsForJob returns the full application set of a posting for its
// owner, newest first.
func (s *Service) ApplicantsForJob(requesterID, jobID string) ([]Application, error) {
	posting, err := s.jobs.GetByID(jobID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if posting.UserID != requesterID {
		return nil, ErrForbidden
	}
	return s.apps.ApplicationsForJob(jobID)
}

// ChangeStatus transitions one application, then notifies the applicant
// best-effort. The write is persisted before any notification attempt and
// a failed notification never rolls it back.
func (s *Service) ChangeStatus(requesterID, appID string, newStatus Status) (Application, error) {
	if !KnownStatus(newStatus) {
		return Application{}, ErrUnknownStatus
	}
	app, err := s.apps.GetByID(appID)
	if err != nil {
		if isNotFound(err) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	posting, err := s.jobs.GetByID(app.JobID)
	if err != nil {
		if isNotFound(err) {
			return Application{}, ErrDanglingJob
		}
		return Application{}, err
	}
	if posting.UserID != requesterID {
		return Application{}, ErrForbidden
	}
	if !CanTransition(app.Status, newStatus) {
		return Application{}, ErrInvalidTransition
	}
	if err := s.apps.UpdateStatus(app.ID, newStatus); err != nil {
		return Application{}, err
	}
	oldStatus := app.Status
	app.Status = newStatus
	if s.notifier != nil {
		s.notifier.NotifyStatusChange(app.UserID, app.ID, app.JobTitle, oldStatus, newStatus)
	}
	return app, nil
}

type BulkFailure struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
}

type BulkResult struct {
	Updated []string      `json:"updated"`
	Failed  []BulkFailure `json:"failed"`
}

// ChangeStatusBulk transitions each selected application independently:
// one failed write neither rolls back nor blocks the others. Every
// persisted change gets its own best-effort notification.
func (s *Service) ChangeStatusBulk(requesterID, jobID string, appIDs []string, newStatus Status) (BulkResult, error) {
	result := BulkResult{Updated: []string{}, Failed: []BulkFailure{}}
	if !KnownStatus(newStatus) {
		return result, ErrUnknownStatus
	}
	posting, err := s.jobs.GetByID(jobID)
	if err != nil {
		if isNotFound(err) {
			return result, ErrNotFound
		}
		return result, err
	}
	if posting.UserID != requesterID {
		return result, ErrForbidden
	}
	for _, appID := range appIDs {
		app, err := s.apps.GetByID(appID)
		if err != nil {
			result.Failed = append(result.Failed, BulkFailure{ApplicationID: appID, Reason: "application not found"})
			continue
		}
		if app.JobID != jobID {
			result.Failed = append(result.Failed, BulkFailure{ApplicationID: appID, Reason: "application belongs to another posting"})
			continue
		}
		if !CanTransition(app.Status, newStatus) {
			result.Failed = append(result.Failed, BulkFailure{ApplicationID: appID, Reason: "status transition not allowed"})
			continue
		}
		if err := s.apps.UpdateStatus(app.ID, newStatus); err != nil {
			result.Failed = append(result.Failed, BulkFailure{ApplicationID: appID, Reason: "unable to update status"})
			continue
		}
		result.Updated = append(result.Updated, app.ID)
		if s.notifier != nil {
			s.notifier.NotifyStatusChange(app.UserID, app.ID, app.JobTitle, app.Status, newStatus)
		}
	}
	return result, nil
}
