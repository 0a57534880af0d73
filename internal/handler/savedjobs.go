package handler

import (
	"net/http"

	"github.com/jobdori/job-board/internal/job"
	"github.com/jobdori/job-board/internal/middleware"
	"github.com/jobdori/job-board/internal/savedjobs"
	"github.com/jobdori/job-board/internal/server"
)

func SavedJobsList(svr server.Server, savedRepo *savedjobs.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}

		saved, err := savedRepo.SavedJobsForUser(profile.UserID)
		if err != nil {
			svr.Log(err, "SavedJobsForUser")
		}

		svr.JSON(w, http.StatusOK, saved)
	}
}

func SaveJob(svr server.Server, savedRepo *savedjobs.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}

		jobID := r.FormValue("job-id")
		posting, err := jobRepo.GetByID(jobID)
		if err != nil {
			svr.Log(err, "SaveJob")
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}

		switch r.Method {
		case http.MethodPost:
			err = savedRepo.SaveJob(profile.UserID, posting.ID)
			if err != nil {
				svr.Log(err, "SaveJob")
				svr.JSON(w, http.StatusInternalServerError, nil)
				return
			}
			svr.JSON(w, http.StatusCreated, nil)

		case http.MethodDelete:
			err = savedRepo.RemoveSavedJob(profile.UserID, posting.ID)
			if err != nil {
				svr.Log(err, "RemoveSavedJob")
				svr.JSON(w, http.StatusInternalServerError, nil)
				return
			}
			svr.JSON(w, http.StatusNoContent, nil)
		}
	}
}
