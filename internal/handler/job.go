package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"

	"github.com/jobdori/job-board/internal/job"
	"github.com/jobdori/job-board/internal/middleware"
	"github.com/jobdori/job-board/internal/server"
)

func CreateJob(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		if !profile.IsRecruiter {
			svr.JSON(w, http.StatusForbidden, map[string]interface{}{"message": "only recruiter accounts can post jobs"})
			return
		}
		req := &job.JobRq{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		if req.Title == "" || req.Company == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "title and company are required"})
			return
		}
		req.Description = bluemonday.UGCPolicy().Sanitize(req.Description)
		jobID, err := jobRepo.CreateDraft(req, profile.UserID)
		if err != nil {
			svr.Log(err, "unable to save job draft")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusCreated, map[string]interface{}{"id": jobID})
	}
}

func UpdateJob(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		req := &job.JobRqUpdate{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		posting, err := jobRepo.GetByID(req.ID)
		if err != nil {
			svr.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "posting not found"})
			return
		}
		if posting.UserID != profile.UserID {
			svr.JSON(w, http.StatusForbidden, map[string]interface{}{"message": "cannot manage this posting"})
			return
		}
		req.Description = bluemonday.UGCPolicy().Sanitize(req.Description)
		if err := jobRepo.UpdateJob(req); err != nil {
			svr.Log(err, "unable to update job")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		if err := svr.CacheDelete(server.CacheKeyPublishedJobs); err != nil {
			svr.Log(err, "unable to invalidate published jobs cache")
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}

func PublishJob(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return ownerJobAction(svr, jobRepo, jobRepo.PublishJob)
}

func CloseJob(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return ownerJobAction(svr, jobRepo, jobRepo.CloseJob)
}

func ownerJobAction(svr server.Server, jobRepo *job.Repository, action func(jobID string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		vars := mux.Vars(r)
		posting, err := jobRepo.GetByID(vars["id"])
		if err != nil {
			svr.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "posting not found"})
			return
		}
		if posting.UserID != profile.UserID {
			svr.JSON(w, http.StatusForbidden, map[string]interface{}{"message": "cannot manage this posting"})
			return
		}
		if err := action(posting.ID); err != nil {
			svr.Log(err, "unable to change job state")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		if err := svr.CacheDelete(server.CacheKeyPublishedJobs); err != nil {
			svr.Log(err, "unable to invalidate published jobs cache")
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}

func JobsForOwner(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		jobs, err := jobRepo.JobsForOwner(profile.UserID)
		if err != nil {
			svr.Log(err, "JobsForOwner")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, jobs)
	}
}

// JobBySlug serves one posting. Unpublished or closed postings are only
// visible to their owner.
func JobBySlug(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		posting, err := jobRepo.GetBySlug(vars["slug"])
		if err != nil {
			svr.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "posting not found"})
			return
		}
		if !posting.IsOpen() {
			profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
			if err != nil || profile.UserID != posting.UserID {
				svr.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "posting not found"})
				return
			}
		}
		svr.JSON(w, http.StatusOK, posting)
	}
}

func PublishedJobs(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := svr.CacheGet(server.CacheKeyPublishedJobs); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		jobs, err := jobRepo.PublishedJobs()
		if err != nil {
			svr.Log(err, "PublishedJobs")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		body, err := json.Marshal(jobs)
		if err != nil {
			svr.Log(err, "unable to marshal published jobs")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		if err := svr.CacheSet(server.CacheKeyPublishedJobs, body); err != nil {
			svr.Log(err, "unable to cache published jobs")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

func JobsRSSFeed(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := svr.GetConfig()
		jobs, err := jobRepo.PublishedJobs()
		if err != nil {
			svr.Log(err, "unable to retrieve published jobs for feed")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		feed := &feeds.Feed{
			Title:   cfg.SiteName,
			Link:    &feeds.Link{Href: cfg.URLProtocol + cfg.SiteHost},
			Created: time.Now(),
		}
		for _, j := range jobs {
			feed.Items = append(feed.Items, &feeds.Item{
				Id:          j.ID,
				Title:       fmt.Sprintf("%s - %s", j.Title, j.Company),
				Link:        &feeds.Link{Href: fmt.Sprintf("%s%s/job/%s", cfg.URLProtocol, cfg.SiteHost, j.Slug)},
				Description: j.Description,
				Created:     j.CreatedAt,
			})
		}
		rss, err := feed.ToRss()
		if err != nil {
			svr.Log(err, "unable to render rss feed")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.XML(w, http.StatusOK, []byte(rss))
	}
}
