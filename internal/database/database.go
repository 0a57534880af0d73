package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Table Structure:
//
// CREATE TABLE IF NOT EXISTS users (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	email VARCHAR(255) NOT NULL UNIQUE,
// 	name VARCHAR(255) NOT NULL DEFAULT '',
// 	user_type VARCHAR(20) NOT NULL,
// 	fcm_token TEXT,
// 	notifications_enabled BOOLEAN NOT NULL DEFAULT TRUE,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );

// CREATE TABLE IF NOT EXISTS user_sign_on_token (
// 	token CHAR(27) NOT NULL UNIQUE,
// 	email VARCHAR(255) NOT NULL,
// 	user_type VARCHAR(20) NOT NULL,
// 	created_at TIMESTAMP NOT NULL
// );

// CREATE TABLE IF NOT EXISTS job (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	user_id CHAR(27) NOT NULL,
// 	title VARCHAR(255) NOT NULL,
// 	company VARCHAR(255) NOT NULL,
// 	location VARCHAR(255) NOT NULL DEFAULT '',
// 	description TEXT NOT NULL DEFAULT '',
// 	wage_text VARCHAR(255) NOT NULL DEFAULT '',
// 	publication_state VARCHAR(20) NOT NULL DEFAULT 'draft',
// 	is_closed BOOLEAN NOT NULL DEFAULT FALSE,
// 	slug VARCHAR(255) NOT NULL UNIQUE,
// 	created_at TIMESTAMP NOT NULL,
// 	updated_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE INDEX job_user_id_idx on job (user_id);

// CREATE TABLE IF NOT EXISTS resume (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	user_id CHAR(27) NOT NULL,
// 	payload JSONB NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	updated_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE INDEX resume_user_id_idx on resume (user_id);

// CREATE TABLE IF NOT EXISTS application (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	user_id CHAR(27) NOT NULL,
// 	job_id CHAR(27) NOT NULL,
// 	job_title VARCHAR(255) NOT NULL,
// 	company VARCHAR(255) NOT NULL,
// 	resume JSONB NOT NULL,
// 	status VARCHAR(20) NOT NULL DEFAULT 'submitted',
// 	is_checked BOOLEAN NOT NULL DEFAULT FALSE,
// 	created_at TIMESTAMP NOT NULL,
// 	updated_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
// one application per (applicant, job); backs the best-effort pre-submit check
// CREATE UNIQUE INDEX application_user_id_job_id_idx on application (user_id, job_id);
// CREATE INDEX application_job_id_idx on application (job_id);

// CREATE TABLE IF NOT EXISTS notification (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	user_id CHAR(27) NOT NULL,
// 	notification_type VARCHAR(50) NOT NULL,
// 	title VARCHAR(255) NOT NULL,
// 	body TEXT NOT NULL,
// 	payload JSONB NOT NULL,
// 	read BOOLEAN NOT NULL DEFAULT FALSE,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE INDEX notification_user_id_idx on notification (user_id);

// CREATE TABLE IF NOT EXISTS user_jobs_saved (
// 	user_id CHAR(27) NOT NULL,
// 	job_id CHAR(27) NOT NULL,
// 	saved_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(user_id, job_id)
// );

func GetDbConn(databaseUser string, databasePassword string, databaseHost string, databasePort string, databaseName string, sslMode string) (*sql.DB, error) {
	databaseURL := fmt.Sprintf("postgres://%v:%v@%v:%v/%v?sslmode=%s",
		databaseUser,
		databasePassword,
		databaseHost,
		databasePort,
		databaseName,
		sslMode,
	)
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(20)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}
