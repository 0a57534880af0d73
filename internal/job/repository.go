package job

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gosimple/slug"
	"github.com/segmentio/ksuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

// CreateDraft inserts a new posting in the draft state and returns its id.
func (r *Repository) CreateDraft(rq *JobRq, userID string) (string, error) {
	jobID, err := ksuid.NewRandom()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	slugTitle := slug.Make(fmt.Sprintf("%s %s %d", rq.Title, rq.Company, now.Unix()))
	_, err = r.db.Exec(
		`INSERT INTO job (id, user_id, title, company, location, description, wage_text, publication_state, is_closed, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, $10, $10)`,
		jobID.String(), userID, rq.Title, rq.Company, rq.Location, rq.Description, rq.WageText, PublicationStateDraft, slugTitle, now,
	)
	if err != nil {
		return "", err
	}
	return jobID.String(), nil
}

func (r *Repository) UpdateJob(rq *JobRqUpdate) error {
	_, err := r.db.Exec(
		`UPDATE job SET title = $1, company = $2, location = $3, description = $4, wage_text = $5, updated_at = NOW() WHERE id = $6`,
		rq.Title, rq.Company, rq.Location, rq.Description, rq.WageText, rq.ID,
	)
	return err
}

func (r *Repository) PublishJob(jobID string) error {
	_, err := r.db.Exec(`UPDATE job SET publication_state = $1, updated_at = NOW() WHERE id = $2`, PublicationStatePublished, jobID)
	return err
}

// CloseJob marks a posting closed. Postings are never hard-deleted.
func (r *Repository) CloseJob(jobID string) error {
	_, err := r.db.Exec(`UPDATE job SET is_closed = TRUE, updated_at = NOW() WHERE id = $1`, jobID)
	return err
}

func (r *Repository) GetByID(jobID string) (JobPosting, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, title, company, location, description, wage_text, publication_state, is_closed, slug, created_at, updated_at FROM job WHERE id = $1`,
		jobID,
	)
	return scanJob(row)
}

func (r *Repository) GetBySlug(jobSlug string) (JobPosting, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, title, company, location, description, wage_text, publication_state, is_closed, slug, created_at, updated_at FROM job WHERE slug = $1`,
		jobSlug,
	)
	return scanJob(row)
}

func (r *Repository) JobsForOwner(userID string) ([]JobPosting, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, title, company, location, description, wage_text, publication_state, is_closed, slug, created_at, updated_at FROM job WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *Repository) PublishedJobs() ([]JobPosting, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, title, company, location, description, wage_text, publication_state, is_closed, slug, created_at, updated_at FROM job WHERE publication_state = $1 AND is_closed = FALSE ORDER BY created_at DESC`,
		PublicationStatePublished,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (JobPosting, error) {
	var j JobPosting
	err := row.Scan(&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location, &j.Description, &j.WageText, &j.PublicationState, &j.IsClosed, &j.Slug, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return JobPosting{}, err
	}
	j.CreatedAtHumanised = humanize.Time(j.CreatedAt.UTC())
	return j, nil
}

func scanJobs(rows *sql.Rows) ([]JobPosting, error) {
	jobs := []JobPosting{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return jobs, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return jobs, err
	}
	return jobs, nil
}
