package resume

import (
	"time"
)

type Education struct {
	School         string `json:"school"`
	Major          string `json:"major"`
	Degree         string `json:"degree"`
	SubDegree      string `json:"sub_degree,omitempty"`
	EntryYear      string `json:"entry_year"`
	GraduationYear string `json:"graduation_year"`
	Status         string `json:"status"`
}

type Career struct {
	Company   string `json:"company"`
	Position  string `json:"position"`
	IsCurrent bool   `json:"is_current"`
}

type WorkLocation struct {
	Regions []string `json:"regions"`
}

type WorkPreferences struct {
	WorkType            []string     `json:"work_type"`
	WorkPeriod          string       `json:"work_period"`
	WorkDays            []string     `json:"work_days"`
	WorkLocation        WorkLocation `json:"work_location"`
	SelectedJobs        []string     `json:"selected_jobs"`
	SelectedSpecialties []string     `json:"selected_specialties"`
}

type Portfolio struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"` // link or file
	URL         string `json:"url"`
	FileName    string `json:"file_name,omitempty"`
	StoragePath string `json:"storage_path,omitempty"`
	IsPublic    bool   `json:"is_public"`
}

type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Certificate struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	AcquiredAt string `json:"acquired_at"`
}

type ComputerSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Photo struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type EmploymentPreferences struct {
	IsVeteran          bool `json:"is_veteran"`
	HasDisability      bool `json:"has_disability"`
	IsEmploymentTarget bool `json:"is_employment_target"`
}

// Resume is the applicant's live resume. Applications embed an immutable
// snapshot taken at submission time, never a reference to this record.
type Resume struct {
	ID                    string                `json:"id"`
	UserID                string                `json:"user_id"`
	Name                  string                `json:"name"`
	BirthDate             string                `json:"birth_date"`
	Phone                 string                `json:"phone"`
	Email                 string                `json:"email"`
	Address               string                `json:"address,omitempty"`
	ProfileImageURL       string                `json:"profile_image_url,omitempty"`
	SelfIntroduction      string                `json:"self_introduction,omitempty"`
	Educations            []Education           `json:"educations"`
	Careers               []Career              `json:"careers"`
	WorkPreferences       WorkPreferences       `json:"work_preferences"`
	Languages             []Language            `json:"languages"`
	Certificates          []Certificate         `json:"certificates"`
	ComputerSkills        []ComputerSkill       `json:"computer_skills"`
	Specialties           []string              `json:"specialties"`
	Portfolios            []Portfolio           `json:"portfolios"`
	PhotoAlbum            []Photo               `json:"photo_album"`
	EmploymentPreferences EmploymentPreferences `json:"employment_preferences"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
}
