package application

import (
	"net/url"
	"testing"
	"time"

	"github.com/jobdori/job-board/internal/resume"
)

func filterNow() time.Time {
	return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func sampleApplications() []Application {
	return []Application{
		{
			ID:     "app-1",
			Status: StatusReviewed,
			Resume: ResumeSnapshot{
				Name:      "Kim Minsoo",
				Email:     "minsoo@example.com",
				BirthDate: "1996-03-02", // 28 at filterNow
				Educations: []resume.Education{
					{School: "Korea University", Major: "Computer Science", Degree: DegreeBachelor},
				},
				SelfIntroduction: "Three years building React frontends.",
			},
		},
		{
			ID:     "app-2",
			Status: StatusReviewed,
			Resume: ResumeSnapshot{
				Name:      "Lee Jiwoo",
				Email:     "jiwoo@example.com",
				BirthDate: "2002-11-20", // 21 at filterNow
				Educations: []resume.Education{
					{School: "Busan College", Major: "Design", Degree: DegreeAssociate},
				},
			},
		},
		{
			ID:     "app-3",
			Status: StatusSubmitted,
			Resume: ResumeSnapshot{
				Name:      "Park Dohyun",
				Email:     "dohyun@example.com",
				BirthDate: "1994-01-10", // 30 at filterNow
				Educations: []resume.Education{
					{School: "KAIST", Major: "EE", Degree: DegreeGraduateSchool, SubDegree: SubDegreeMaster},
				},
				WorkPreferences: resume.WorkPreferences{SelectedJobs: []string{"react developer"}},
			},
		},
	}
}

func TestFiltersConjunction(t *testing.T) {
	f := Filters{Status: StatusReviewed, AgeMin: 25, HasAgeMin: true, Keyword: "react"}
	matched := f.Apply(filterNow(), sampleApplications())
	// app-1 alone satisfies all three: reviewed AND age>=25 AND "react"
	if len(matched) != 1 || matched[0].ID != "app-1" {
		t.Fatalf("expected only app-1, got %+v", ids(matched))
	}
}

func TestFiltersZeroValueMatchesAll(t *testing.T) {
	matched := Filters{}.Apply(filterNow(), sampleApplications())
	if len(matched) != 3 {
		t.Fatalf("expected all 3 applications, got %d", len(matched))
	}
}

func TestFiltersStatusOnly(t *testing.T) {
	matched := Filters{Status: StatusSubmitted}.Apply(filterNow(), sampleApplications())
	if len(matched) != 1 || matched[0].ID != "app-3" {
		t.Fatalf("expected only app-3, got %+v", ids(matched))
	}
}

func TestFiltersEducationTier(t *testing.T) {
	matched := Filters{EducationTier: TierMaster}.Apply(filterNow(), sampleApplications())
	if len(matched) != 1 || matched[0].ID != "app-3" {
		t.Fatalf("expected only the master's candidate, got %+v", ids(matched))
	}
	matched = Filters{EducationTier: TierDoctorate}.Apply(filterNow(), sampleApplications())
	if len(matched) != 0 {
		t.Fatalf("expected no doctorates, got %+v", ids(matched))
	}
}

func TestFiltersAgeBoundsExcludeUnparseableBirthDates(t *testing.T) {
	apps := sampleApplications()
	apps[0].Resume.BirthDate = "unknown"

	matched := Filters{AgeMin: 20, HasAgeMin: true}.Apply(filterNow(), apps)
	if len(matched) != 2 {
		t.Fatalf("expected unparseable birth date to be excluded, got %+v", ids(matched))
	}

	// without an age bound the same record passes
	matched = Filters{}.Apply(filterNow(), apps)
	if len(matched) != 3 {
		t.Fatalf("expected all records without age bounds, got %d", len(matched))
	}
}

func TestFiltersKeywordSearchesSelectedJobs(t *testing.T) {
	matched := Filters{Keyword: "React"}.Apply(filterNow(), sampleApplications())
	// app-1 via self introduction, app-3 via selected jobs; case-insensitive
	if len(matched) != 2 {
		t.Fatalf("expected 2 keyword matches, got %+v", ids(matched))
	}
}

func TestFiltersPreserveOrderAndInput(t *testing.T) {
	apps := sampleApplications()
	matched := Filters{Status: StatusReviewed}.Apply(filterNow(), apps)
	if len(matched) != 2 || matched[0].ID != "app-1" || matched[1].ID != "app-2" {
		t.Fatalf("expected input order preserved, got %+v", ids(matched))
	}
	if len(apps) != 3 {
		t.Fatalf("expected input slice untouched, got %d", len(apps))
	}
}

func TestParseFiltersFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("status", "reviewed")
	query.Set("educationTier", "bachelor")
	query.Set("ageMin", "25")
	query.Set("ageMax", "35")
	query.Set("keyword", "  react  ")

	f := ParseFiltersFromQuery(query)
	if f.Status != StatusReviewed {
		t.Errorf("expected status reviewed, got %q", f.Status)
	}
	if f.EducationTier != TierBachelor {
		t.Errorf("expected education tier bachelor, got %q", f.EducationTier)
	}
	if !f.HasAgeMin || f.AgeMin != 25 {
		t.Errorf("expected ageMin 25, got %+v", f)
	}
	if !f.HasAgeMax || f.AgeMax != 35 {
		t.Errorf("expected ageMax 35, got %+v", f)
	}
	if f.Keyword != "react" {
		t.Errorf("expected keyword trimmed, got %q", f.Keyword)
	}
}

func TestParseFiltersIgnoresAllAndGarbage(t *testing.T) {
	query := url.Values{}
	query.Set("status", "all")
	query.Set("educationTier", "all")
	query.Set("ageMin", "twenty")

	f := ParseFiltersFromQuery(query)
	if f.Status != "" {
		t.Errorf("expected 'all' status to deactivate the filter, got %q", f.Status)
	}
	if f.EducationTier != "" {
		t.Errorf("expected 'all' tier to deactivate the filter, got %q", f.EducationTier)
	}
	if f.HasAgeMin {
		t.Error("expected unparseable ageMin to leave the bound inactive")
	}

	query.Set("status", "archived")
	f = ParseFiltersFromQuery(query)
	if f.Status != "" {
		t.Errorf("expected unknown status to be ignored, got %q", f.Status)
	}
}

func ids(apps []Application) []string {
	out := []string{}
	for _, app := range apps {
		out = append(out, app.ID)
	}
	return out
}
