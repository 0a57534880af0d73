package application

import (
	"errors"
	"time"

	"github.com/jobdori/job-board/internal/resume"
)

var (
	ErrNotFound            = errors.New("application not found")
	ErrForbidden           = errors.New("requester is neither the applicant nor the job owner")
	ErrDanglingJob         = errors.New("application references a job that no longer exists")
	ErrDuplicateSubmission = errors.New("an application for this job already exists")
	ErrJobNotOpen          = errors.New("job is not open for applications")
	ErrResumeRequired      = errors.New("a resume owned by the applicant is required")
	ErrUnknownStatus       = errors.New("unknown application status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)

// ResumeSnapshot is the copy of the applicant's resume embedded in an
// application at submission time. It shares no identity with the live
// resume: later edits to the live resume never propagate here.
type ResumeSnapshot struct {
	Name                  string                       `json:"name"`
	BirthDate             string                       `json:"birth_date"`
	Phone                 string                       `json:"phone"`
	Email                 string                       `json:"email"`
	Address               string                       `json:"address,omitempty"`
	ProfileImageURL       string                       `json:"profile_image_url,omitempty"`
	SelfIntroduction      string                       `json:"self_introduction,omitempty"`
	Educations            []resume.Education           `json:"educations"`
	Careers               []resume.Career              `json:"careers"`
	WorkPreferences       resume.WorkPreferences       `json:"work_preferences"`
	Languages             []resume.Language            `json:"languages"`
	Certificates          []resume.Certificate         `json:"certificates"`
	ComputerSkills        []resume.ComputerSkill       `json:"computer_skills"`
	Specialties           []string                     `json:"specialties"`
	Portfolios            []resume.Portfolio           `json:"portfolios"`
	PhotoAlbum            []resume.Photo               `json:"photo_album"`
	EmploymentPreferences resume.EmploymentPreferences `json:"employment_preferences"`
}

// SnapshotResume copies a live resume into an immutable snapshot. Slices
// are copied so the snapshot cannot be mutated through the live record.
func SnapshotResume(res resume.Resume) ResumeSnapshot {
	snap := ResumeSnapshot{
		Name:                  res.Name,
		BirthDate:             res.BirthDate,
		Phone:                 res.Phone,
		Email:                 res.Email,
		Address:               res.Address,
		ProfileImageURL:       res.ProfileImageURL,
		SelfIntroduction:      res.SelfIntroduction,
		WorkPreferences:       copyWorkPreferences(res.WorkPreferences),
		EmploymentPreferences: res.EmploymentPreferences,
	}
	snap.Educations = append([]resume.Education{}, res.Educations...)
	snap.Careers = append([]resume.Career{}, res.Careers...)
	snap.Languages = append([]resume.Language{}, res.Languages...)
	snap.Certificates = append([]resume.Certificate{}, res.Certificates...)
	snap.ComputerSkills = append([]resume.ComputerSkill{}, res.ComputerSkills...)
	snap.Specialties = append([]string{}, res.Specialties...)
	snap.Portfolios = append([]resume.Portfolio{}, res.Portfolios...)
	snap.PhotoAlbum = append([]resume.Photo{}, res.PhotoAlbum...)
	return snap
}

func copyWorkPreferences(wp resume.WorkPreferences) resume.WorkPreferences {
	out := wp
	out.WorkType = append([]string{}, wp.WorkType...)
	out.WorkDays = append([]string{}, wp.WorkDays...)
	out.WorkLocation.Regions = append([]string{}, wp.WorkLocation.Regions...)
	out.SelectedJobs = append([]string{}, wp.SelectedJobs...)
	out.SelectedSpecialties = append([]string{}, wp.SelectedSpecialties...)
	return out
}

type Application struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	JobID              string         `json:"job_id"`
	JobTitle           string         `json:"job_title"`
	Company            string         `json:"company"`
	Resume             ResumeSnapshot `json:"resume"`
	Status             Status         `json:"status"`
	IsChecked          bool           `json:"is_checked"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	CreatedAtHumanised string         `json:"created_at_humanised,omitempty"`
}
