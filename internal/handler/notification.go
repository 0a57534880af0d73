package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jobdori/job-board/internal/middleware"
	"github.com/jobdori/job-board/internal/notification"
	"github.com/jobdori/job-board/internal/server"
)

func MyNotifications(svr server.Server, notificationRepo *notification.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		notifications, err := notificationRepo.NotificationsForUser(profile.UserID)
		if err != nil {
			svr.Log(err, "NotificationsForUser")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, notifications)
	}
}

func MarkNotificationRead(svr server.Server, notificationRepo *notification.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, nil)
			return
		}
		vars := mux.Vars(r)
		if err := notificationRepo.MarkRead(vars["id"], profile.UserID); err != nil {
			svr.Log(err, "MarkRead")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}
