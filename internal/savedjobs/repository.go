package savedjobs

import (
	"database/sql"
	"time"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) SaveJob(userID, jobID string) error {
	_, err := r.db.Exec(
		`INSERT INTO user_jobs_saved (user_id, job_id, saved_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		userID,
		jobID,
		time.Now().UTC(),
	)
	return err
}

func (r *Repository) RemoveSavedJob(userID, jobID string) error {
	_, err := r.db.Exec(`DELETE FROM user_jobs_saved WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	return err
}

func (r *Repository) SavedJobsForUser(userID string) ([]SavedJob, error) {
	rows, err := r.db.Query(
		`SELECT s.user_id, s.job_id, j.title, j.company, j.location, j.slug, j.is_closed, s.saved_at
		FROM user_jobs_saved s JOIN job j ON j.id = s.job_id
		WHERE s.user_id = $1 AND j.publication_state = 'published' ORDER BY s.saved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	saved := []SavedJob{}
	for rows.Next() {
		var sj SavedJob
		if err := rows.Scan(&sj.UserID, &sj.JobID, &sj.Title, &sj.Company, &sj.Location, &sj.Slug, &sj.IsClosed, &sj.SavedAt); err != nil {
			return saved, err
		}
		saved = append(saved, sj)
	}
	if err := rows.Err(); err != nil {
		return saved, err
	}
	return saved, nil
}
