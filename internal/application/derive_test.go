package application

import (
	"testing"
	"time"

	"github.com/jobdori/job-board/internal/resume"
)

func TestAgeAtBirthdayBoundary(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		birthDate string
		want      int
	}{
		{"2000-06-15", 24}, // birthday today
		{"2000-06-16", 23}, // birthday tomorrow
		{"2000-06-14", 24}, // birthday yesterday
		{"2000-12-31", 23},
		{"2000-01-01", 24},
		{"2000.06.16", 23}, // dotted layout
		{"2000/06/15", 24}, // slash layout
	}
	for _, c := range cases {
		got, ok := AgeAt(c.birthDate, now)
		if !ok {
			t.Fatalf("expected %q to parse", c.birthDate)
		}
		if got != c.want {
			t.Errorf("AgeAt(%q) = %d, want %d", c.birthDate, got, c.want)
		}
	}
}

func TestAgeAtUnparseable(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	for _, birthDate := range []string{"", "unknown", "15-06-2000", "2000-6-15"} {
		if _, ok := AgeAt(birthDate, now); ok {
			t.Errorf("expected %q to be rejected", birthDate)
		}
	}
}

func TestHighestEducationPicksTopTier(t *testing.T) {
	educations := []resume.Education{
		{School: "Hanyang High", Degree: DegreeHighSchool},
		{School: "Korea University", Degree: DegreeBachelor},
		{School: "Busan College", Degree: DegreeAssociate},
	}
	highest, ok := HighestEducation(educations)
	if !ok {
		t.Fatal("expected a highest entry")
	}
	if highest.School != "Korea University" {
		t.Fatalf("expected bachelor entry, got %q", highest.School)
	}
}

func TestHighestEducationSubDegreeOverride(t *testing.T) {
	educations := []resume.Education{
		{School: "Korea University", Degree: DegreeBachelor},
		{School: "KAIST", Degree: DegreeGraduateSchool, SubDegree: SubDegreeDoctorate},
		{School: "Yonsei University", Degree: DegreeGraduateSchool, SubDegree: SubDegreeMaster},
	}
	highest, ok := HighestEducation(educations)
	if !ok {
		t.Fatal("expected a highest entry")
	}
	if highest.School != "KAIST" {
		t.Fatalf("expected doctorate entry to win, got %q", highest.School)
	}
}

func TestHighestEducationTieKeepsFirst(t *testing.T) {
	educations := []resume.Education{
		{School: "first", Degree: DegreeBachelor},
		{School: "second", Degree: DegreeBachelor},
	}
	highest, _ := HighestEducation(educations)
	if highest.School != "first" {
		t.Fatalf("expected ties to keep the first entry, got %q", highest.School)
	}
}

func TestHighestEducationEmpty(t *testing.T) {
	if _, ok := HighestEducation(nil); ok {
		t.Fatal("expected no highest entry for an empty set")
	}
}

func TestEducationScoreUnrecognisedDegree(t *testing.T) {
	educations := []resume.Education{
		{School: "somewhere", Degree: "bootcamp"},
		{School: "Hanyang High", Degree: DegreeHighSchool},
	}
	highest, _ := HighestEducation(educations)
	if highest.School != "Hanyang High" {
		t.Fatalf("expected unrecognised degrees to rank lowest, got %q", highest.School)
	}
}
