package resume

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/segmentio/ksuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

// Save inserts a new resume or replaces the payload of an existing one.
func (r *Repository) Save(res *Resume) error {
	now := time.Now().UTC()
	if res.ID == "" {
		resumeID, err := ksuid.NewRandom()
		if err != nil {
			return err
		}
		res.ID = resumeID.String()
		res.CreatedAt = now
	}
	res.UpdatedAt = now
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO resume (id, user_id, payload, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET payload = $3, updated_at = $5`,
		res.ID, res.UserID, payload, res.CreatedAt, res.UpdatedAt,
	)
	return err
}

func (r *Repository) GetByID(resumeID string) (Resume, error) {
	row := r.db.QueryRow(`SELECT payload FROM resume WHERE id = $1`, resumeID)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		return Resume{}, err
	}
	var res Resume
	if err := json.Unmarshal(payload, &res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// ResumesForUser returns the user's resumes most recently updated first.
func (r *Repository) ResumesForUser(userID string) ([]Resume, error) {
	rows, err := r.db.Query(`SELECT payload FROM resume WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	resumes := []Resume{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return resumes, err
		}
		var res Resume
		if err := json.Unmarshal(payload, &res); err != nil {
			return resumes, err
		}
		resumes = append(resumes, res)
	}
	if err := rows.Err(); err != nil {
		return resumes, err
	}
	return resumes, nil
}

func (r *Repository) DeleteResume(resumeID, userID string) error {
	_, err := r.db.Exec(`DELETE FROM resume WHERE id = $1 AND user_id = $2`, resumeID, userID)
	return err
}
