package handler

import (
	"net/http"

	"github.com/jobdori/job-board/internal/middleware"
	"github.com/jobdori/job-board/internal/server"
	"github.com/jobdori/job-board/internal/user"
)

// TriggerExpiredTokensTask purges week-old sign-on tokens. Hit by cron
// with the machine token, never by browsers.
func TriggerExpiredTokensTask(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return middleware.MachineAuthenticatedMiddleware(
		svr.GetConfig().MachineToken,
		func(w http.ResponseWriter, r *http.Request) {
			go func() {
				if err := userRepo.DeleteExpiredUserSignOnTokens(); err != nil {
					svr.Log(err, "unable to delete expired sign on tokens")
				}
			}()
			svr.JSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
		},
	)
}
