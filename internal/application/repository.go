package application

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lib/pq"
	"github.com/segmentio/ksuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

// Create inserts a new application. The unique index on (user_id, job_id)
// backs the best-effort duplicate pre-check: a second writer that slipped
// past the check gets ErrDuplicateSubmission here.
func (r *Repository) Create(app *Application) error {
	if app.ID == "" {
		appID, err := ksuid.NewRandom()
		if err != nil {
			return err
		}
		app.ID = appID.String()
	}
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	snapshot, err := json.Marshal(app.Resume)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO application (id, user_id, job_id, job_title, company, resume, status, is_checked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $8)`,
		app.ID, app.UserID, app.JobID, app.JobTitle, app.Company, snapshot, app.Status, now,
	)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
		return ErrDuplicateSubmission
	}
	return err
}

func (r *Repository) ExistsForUserAndJob(userID, jobID string) (bool, error) {
	row := r.db.QueryRow(`SELECT count(*) as c FROM application WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	var c int
	if err := row.Scan(&c); err != nil {
		return false, err
	}
	return c > 0, nil
}

func (r *Repository) GetByID(appID string) (Application, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, job_id, job_title, company, resume, status, is_checked, created_at, updated_at FROM application WHERE id = $1`,
		appID,
	)
	app, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return Application{}, ErrNotFound
	}
	return app, err
}

// ApplicationsForJob returns every application for one posting, newest first.
func (r *Repository) ApplicationsForJob(jobID string) ([]Application, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, job_id, job_title, company, resume, status, is_checked, created_at, updated_at FROM application WHERE job_id = $1 ORDER BY created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *Repository) ApplicationsForUser(userID string) ([]Application, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, job_id, job_title, company, resume, status, is_checked, created_at, updated_at FROM application WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// UpdateStatus persists the new status and refreshes updated_at. The
// embedded resume snapshot is never touched.
func (r *Repository) UpdateStatus(appID string, status Status) error {
	res, err := r.db.Exec(`UPDATE application SET status = $1, updated_at = NOW() WHERE id = $2`, status, appID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) MarkChecked(appID string) error {
	_, err := r.db.Exec(`UPDATE application SET is_checked = TRUE WHERE id = $1`, appID)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var snapshot []byte
	err := row.Scan(&app.ID, &app.UserID, &app.JobID, &app.JobTitle, &app.Company, &snapshot, &app.Status, &app.IsChecked, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return Application{}, err
	}
	if err := json.Unmarshal(snapshot, &app.Resume); err != nil {
		return Application{}, err
	}
	app.CreatedAtHumanised = humanize.Time(app.CreatedAt.UTC())
	return app, nil
}

func scanApplications(rows *sql.Rows) ([]Application, error) {
	apps := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return apps, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return apps, err
	}
	return apps, nil
}
