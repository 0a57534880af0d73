package application

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Education tiers accepted by the candidate filter.
const (
	TierHighSchool = "high-school"
	TierAssociate  = "associate"
	TierBachelor   = "bachelor"
	TierMaster     = "master"
	TierDoctorate  = "doctorate"
)

var validEducationTiers = map[string]struct{}{
	TierHighSchool: {},
	TierAssociate:  {},
	TierBachelor:   {},
	TierMaster:     {},
	TierDoctorate:  {},
}

// Filters narrows a job's application set on the management surface.
// All active fields combine with logical AND; zero values bypass.
type Filters struct {
	Status        Status
	EducationTier string
	AgeMin        int
	AgeMax        int
	HasAgeMin     bool
	HasAgeMax     bool
	Keyword       string
}

func ParseFiltersFromQuery(query url.Values) Filters {
	var f Filters

	statusStr := query.Get("status")
	if statusStr != "" && statusStr != "all" && KnownStatus(Status(statusStr)) {
		f.Status = Status(statusStr)
	}

	tierStr := query.Get("educationTier")
	if _, ok := validEducationTiers[tierStr]; ok {
		f.EducationTier = tierStr
	}

	// If we can't convert the string to an int the bound stays inactive
	if ageMinStr := query.Get("ageMin"); ageMinStr != "" {
		if ageMin, err := strconv.Atoi(ageMinStr); err == nil {
			f.AgeMin = ageMin
			f.HasAgeMin = true
		}
	}
	if ageMaxStr := query.Get("ageMax"); ageMaxStr != "" {
		if ageMax, err := strconv.Atoi(ageMaxStr); err == nil {
			f.AgeMax = ageMax
			f.HasAgeMax = true
		}
	}

	f.Keyword = strings.TrimSpace(query.Get("keyword"))

	return f
}

// Apply returns the subset of apps matching every active filter field.
// Pure: the input slice is never mutated and ordering is preserved.
func (f Filters) Apply(now time.Time, apps []Application) []Application {
	matched := []Application{}
	for _, app := range apps {
		if f.matches(now, app) {
			matched = append(matched, app)
		}
	}
	return matched
}

func (f Filters) matches(now time.Time, app Application) bool {
	if f.Status != "" && app.Status != f.Status {
		return false
	}
	if f.EducationTier != "" && !matchesEducationTier(app, f.EducationTier) {
		return false
	}
	if f.HasAgeMin || f.HasAgeMax {
		age, ok := AgeAt(app.Resume.BirthDate, now)
		if !ok {
			return false
		}
		if f.HasAgeMin && age < f.AgeMin {
			return false
		}
		if f.HasAgeMax && age > f.AgeMax {
			return false
		}
	}
	if f.Keyword != "" && !matchesKeyword(app, f.Keyword) {
		return false
	}
	return true
}

func matchesEducationTier(app Application, tier string) bool {
	highest, ok := HighestEducation(app.Resume.Educations)
	if !ok {
		return false
	}
	switch tier {
	case TierHighSchool:
		return highest.Degree == DegreeHighSchool
	case TierAssociate:
		return highest.Degree == DegreeAssociate
	case TierBachelor:
		return highest.Degree == DegreeBachelor
	case TierMaster:
		return highest.Degree == DegreeGraduateSchool && highest.SubDegree == SubDegreeMaster
	case TierDoctorate:
		return highest.Degree == DegreeGraduateSchool && highest.SubDegree == SubDegreeDoctorate
	}
	return true
}

func matchesKeyword(app Application, keyword string) bool {
	var sb strings.Builder
	sb.WriteString(app.Resume.Name)
	sb.WriteString(" ")
	sb.WriteString(app.Resume.Email)
	sb.WriteString(" ")
	sb.WriteString(app.Resume.SelfIntroduction)
	for _, edu := range app.Resume.Educations {
		sb.WriteString(" ")
		sb.WriteString(edu.School)
		sb.WriteString(" ")
		sb.WriteString(edu.Major)
	}
	for _, selected := range app.Resume.WorkPreferences.SelectedJobs {
		sb.WriteString(" ")
		sb.WriteString(selected)
	}
	return strings.Contains(strings.ToLower(sb.String()), strings.ToLower(keyword))
}
