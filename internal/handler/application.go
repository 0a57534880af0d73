package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jobdori/job-board/internal/application"
	"github.com/jobdori/job-board/internal/middleware"
	"github.com/jobdori/job-board/internal/server"
)

// applicationErrorToJSON maps the service error taxonomy to the
// domain-language message shown to the user. Raw errors never leak.
func applicationErrorToJSON(svr server.Server, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		svr.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "application not found"})
	case errors.Is(err, application.ErrForbidden):
		svr.JSON(w, http.StatusForbidden, map[string]interface{}{"message": "only the applicant or the posting's recruiter can view this application"})
	case errors.Is(err, application.ErrDanglingJob):
		svr.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "the posting linked to this application no longer exists"})
	case errors.Is(err, application.ErrDuplicateSubmission):
		svr.JSON(w, http.StatusConflict, map[string]interface{}{"message": "already applied to this posting"})
	case errors.Is(err, application.ErrJobNotOpen):
		svr.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"message": "this posting is closed or not yet published"})
	case errors.Is(err, application.ErrResumeRequired):
		svr.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"message": "a resume is required to apply"})
	case errors.Is(err, application.ErrUnknownStatus):
		svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "unknown application status"})
	case errors.Is(err, application.ErrInvalidTransition):
		svr.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"message": "this status change is not allowed"})
	default:
		svr.Log(err, "application handler failure")
		svr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "something went wrong, please try again"})
	}
}

func SubmitApplication(svr server.Server, appService *application.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		req := &struct {
			JobID    string `json:"job_id"`
			ResumeID string `json:"resume_id"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		if req.JobID == "" || req.ResumeID == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "a posting and a resume must be selected"})
			return
		}
		app, err := appService.Submit(profile.UserID, req.JobID, req.ResumeID)
		if err != nil {
			applicationErrorToJSON(svr, w, err)
			return
		}
		svr.JSON(w, http.StatusCreated, app)
	}
}

func ApplicationDetail(svr server.Server, appService *application.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		vars := mux.Vars(r)
		app, err := appService.GetForViewer(profile.UserID, vars["id"])
		if err != nil {
			applicationErrorToJSON(svr, w, err)
			return
		}
		svr.JSON(w, http.StatusOK, app)
	}
}

func MyApplications(svr server.Server, appRepo *application.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		apps, err := appRepo.ApplicationsForUser(profile.UserID)
		if err != nil {
			svr.Log(err, "ApplicationsForUser")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, apps)
	}
}

// ManageApplicants returns a posting's applications for its owner, with
// the candidate filters from the query string applied in memory.
func ManageApplicants(svr server.Server, appService *application.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		vars := mux.Vars(r)
		apps, err := appService.ApplicantsForJob(profile.UserID, vars["jobId"])
		if err != nil {
			if errors.Is(err, application.ErrNotFound) {
				svr.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "posting not found"})
				return
			}
			if errors.Is(err, application.ErrForbidden) {
				svr.JSON(w, http.StatusForbidden, map[string]interface{}{"message": "cannot manage this posting"})
				return
			}
			svr.Log(err, "ApplicantsForJob")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		filters := application.ParseFiltersFromQuery(r.URL.Query())
		filtered := filters.Apply(time.Now(), apps)
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"total":        len(apps),
			"matched":      len(filtered),
			"applications": filtered,
		})
	}
}

func UpdateApplicationStatus(svr server.Server, appService *application.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		vars := mux.Vars(r)
		req := &struct {
			Status string `json:"status"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "a target status is required"})
			return
		}
		app, err := appService.ChangeStatus(profile.UserID, vars["id"], application.Status(req.Status))
		if err != nil {
			applicationErrorToJSON(svr, w, err)
			return
		}
		svr.JSON(w, http.StatusOK, app)
	}
}

func BulkUpdateApplicationStatus(svr server.Server, appService *application.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		vars := mux.Vars(r)
		req := &struct {
			ApplicationIDs []string `json:"application_ids"`
			Status         string   `json:"status"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "a target status is required"})
			return
		}
		if len(req.ApplicationIDs) == 0 {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "select at least one applicant"})
			return
		}
		result, err := appService.ChangeStatusBulk(profile.UserID, vars["jobId"], req.ApplicationIDs, application.Status(req.Status))
		if err != nil {
			applicationErrorToJSON(svr, w, err)
			return
		}
		svr.JSON(w, http.StatusOK, result)
	}
}
