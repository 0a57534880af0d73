package application

import (
	"time"

	"github.com/jobdori/job-board/internal/resume"
)

// Degree values recognised on education entries.
const (
	DegreeElementary     = "elementary-school"
	DegreeMiddleSchool   = "middle-school"
	DegreeHighSchool     = "high-school"
	DegreeAssociate      = "associate"
	DegreeBachelor       = "bachelor"
	DegreeGraduateSchool = "graduate-school"

	SubDegreeMaster    = "master"
	SubDegreeDoctorate = "doctorate"
)

// educationScore ranks one education entry. Sub-degree overrides take
// precedence over the base degree, so a doctorate always outranks any
// entry without one.
func educationScore(edu resume.Education) int {
	switch edu.SubDegree {
	case SubDegreeDoctorate:
		return 6
	case SubDegreeMaster:
		return 5
	}
	switch edu.Degree {
	case DegreeBachelor:
		return 4
	case DegreeAssociate:
		return 3
	case DegreeHighSchool:
		return 2
	case DegreeMiddleSchool:
		return 1
	case DegreeElementary:
		return 0
	}
	return 0
}

// HighestEducation selects the entry with the highest rank. Ties keep the
// first entry encountered, so repeated evaluation is deterministic.
func HighestEducation(educations []resume.Education) (resume.Education, bool) {
	if len(educations) == 0 {
		return resume.Education{}, false
	}
	highest := educations[0]
	for _, edu := range educations[1:] {
		if educationScore(edu) > educationScore(highest) {
			highest = edu
		}
	}
	return highest, true
}

var birthDateLayouts = []string{"2006-01-02", "2006.01.02", "2006/01/02"}

func parseBirthDate(birthDate string) (time.Time, bool) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, birthDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AgeAt computes full years between the birth date and now, one less if
// the birthday has not yet occurred this year. The second return value is
// false when the birth date is absent or unparseable.
func AgeAt(birthDate string, now time.Time) (int, bool) {
	if birthDate == "" {
		return 0, false
	}
	birth, ok := parseBirthDate(birthDate)
	if !ok {
		return 0, false
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, true
}
