package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"

	"github.com/jobdori/job-board/internal/middleware"
	"github.com/jobdori/job-board/internal/resume"
	"github.com/jobdori/job-board/internal/server"
)

func SaveResume(svr server.Server, resumeRepo *resume.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		req := &resume.Resume{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		if req.Name == "" || req.Email == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "name and email are required"})
			return
		}
		if req.ID != "" {
			existing, err := resumeRepo.GetByID(req.ID)
			if err != nil || existing.UserID != profile.UserID {
				svr.JSON(w, http.StatusForbidden, map[string]interface{}{"message": "cannot edit this resume"})
				return
			}
		}
		req.UserID = profile.UserID
		req.SelfIntroduction = bluemonday.UGCPolicy().Sanitize(req.SelfIntroduction)
		if err := resumeRepo.Save(req); err != nil {
			svr.Log(err, "unable to save resume")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"id": req.ID})
	}
}

func DeleteResume(svr server.Server, resumeRepo *resume.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		vars := mux.Vars(r)
		if err := resumeRepo.DeleteResume(vars["id"], profile.UserID); err != nil {
			svr.Log(err, "unable to delete resume")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusNoContent, nil)
	}
}

func MyResumes(svr server.Server, resumeRepo *resume.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		resumes, err := resumeRepo.ResumesForUser(profile.UserID)
		if err != nil {
			svr.Log(err, "ResumesForUser")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, resumes)
	}
}
