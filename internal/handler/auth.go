package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"

	"github.com/jobdori/job-board/internal/email"
	"github.com/jobdori/job-board/internal/middleware"
	"github.com/jobdori/job-board/internal/server"
	"github.com/jobdori/job-board/internal/user"
)

func RequestTokenSignOn(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &struct {
			Email    string `json:"email"`
			UserType string `json:"user_type"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		if !svr.IsEmail(req.Email) {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "a valid email address is required"})
			return
		}
		if req.UserType == "" {
			req.UserType = user.UserTypeApplicant
		}
		if req.UserType != user.UserTypeApplicant && req.UserType != user.UserTypeRecruiter {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "account type must be applicant or recruiter"})
			return
		}
		k, err := ksuid.NewRandom()
		if err != nil {
			svr.Log(err, "unable to generate token")
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		err = userRepo.SaveTokenSignOn(req.Email, k.String(), req.UserType)
		if err != nil {
			svr.Log(err, "unable to save sign on token")
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		cfg := svr.GetConfig()
		err = svr.GetEmail().SendHTMLEmail(
			email.Address{Name: cfg.SiteName, Email: cfg.NoReplyEmail},
			email.Address{Email: req.Email},
			email.Address{Email: cfg.SupportEmail},
			fmt.Sprintf("Sign On on %s", cfg.SiteName),
			fmt.Sprintf("Sign On on %s %s%s/x/auth/%s", cfg.SiteName, cfg.URLProtocol, cfg.SiteHost, k.String()),
		)
		if err != nil {
			svr.Log(err, "unable to send sign on email")
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}

func VerifyTokenSignOn(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		token := vars["token"]
		u, _, err := userRepo.GetOrCreateUserFromToken(token)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to validate signon token %s", token))
			svr.TEXT(w, http.StatusBadRequest, "Invalid or expired token")
			return
		}
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err != nil {
			svr.TEXT(w, http.StatusInternalServerError, "Invalid or expired token")
			return
		}
		stdClaims := &jwt.StandardClaims{
			ExpiresAt: time.Now().Add(30 * 24 * time.Hour).UTC().Unix(),
			IssuedAt:  time.Now().UTC().Unix(),
			Issuer:    svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost,
		}
		claims := middleware.UserJWT{
			UserID:         u.ID,
			Email:          u.Email,
			IsRecruiter:    u.IsRecruiter(),
			IsApplicant:    u.IsApplicant(),
			CreatedAt:      u.CreatedAt,
			StandardClaims: *stdClaims,
		}
		tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		ss, err := tkn.SignedString(svr.GetJWTSigningKey())
		if err != nil {
			svr.Log(err, "unable to sign jwt")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		sess.Values["jwt"] = ss
		err = sess.Save(r, w)
		if err != nil {
			svr.Log(err, "unable to save jwt into session cookie")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"user_id":   u.ID,
			"email":     u.Email,
			"user_type": u.Type,
		})
	}
}

// DeleteAccount removes the signed-on user's account. The email in the
// request body must match the session, a second guard against deleting
// someone else through a stale form.
func DeleteAccount(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		req := &struct {
			Email string `json:"email"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		u, err := userRepo.GetUser(req.Email)
		if err != nil {
			svr.Log(err, "unable to find user to delete")
			svr.JSON(w, http.StatusNotFound, nil)
			return
		}
		if u.ID != profile.UserID {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		if err := userRepo.DeleteUserByEmail(u.Email); err != nil {
			svr.Log(err, "unable to delete user by email "+u.Email)
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err == nil {
			sess.Options.MaxAge = -1
			sess.Save(r, w)
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}

func SaveFCMToken(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		req := &struct {
			FCMToken string `json:"fcm_token"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FCMToken == "" {
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		if err := userRepo.SaveFCMToken(profile.UserID, req.FCMToken); err != nil {
			svr.Log(err, "SaveFCMToken")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}

func ToggleNotifications(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		req := &struct {
			Enabled bool `json:"enabled"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		if err := userRepo.SetNotificationsEnabled(profile.UserID, req.Enabled); err != nil {
			svr.Log(err, "SetNotificationsEnabled")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}
