package main

import (
	"log"
	"net/http"
	"time"

	"github.com/jobdori/job-board/internal/application"
	"github.com/jobdori/job-board/internal/config"
	"github.com/jobdori/job-board/internal/database"
	"github.com/jobdori/job-board/internal/email"
	"github.com/jobdori/job-board/internal/handler"
	"github.com/jobdori/job-board/internal/job"
	"github.com/jobdori/job-board/internal/middleware"
	"github.com/jobdori/job-board/internal/notification"
	"github.com/jobdori/job-board/internal/resume"
	"github.com/jobdori/job-board/internal/savedjobs"
	"github.com/jobdori/job-board/internal/server"
	"github.com/jobdori/job-board/internal/user"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	conn, err := database.GetDbConn(
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
	if err != nil {
		log.Fatalf("unable to connect to postgres: %v", err)
	}
	emailClient, err := email.NewClient(cfg.EmailAPIKey, cfg.NoReplyEmail, cfg.SupportEmail, cfg.SiteName)
	if err != nil {
		log.Fatalf("unable to initialise email client: %v", err)
	}
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)

	var limiter *middleware.RedisLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("unable to parse redis url: %v", err)
		}
		limiter = middleware.NewRedisLimiter(redis.NewClient(opts))
	}

	svr := server.NewServer(
		cfg,
		conn,
		mux.NewRouter(),
		emailClient,
		sessionStore,
	)

	userRepo := user.NewRepository(conn)
	jobRepo := job.NewRepository(conn)
	resumeRepo := resume.NewRepository(conn)
	appRepo := application.NewRepository(conn)
	notificationRepo := notification.NewRepository(conn)
	savedRepo := savedjobs.NewRepository(conn)

	pushClient := notification.NewPushClient(cfg.PushRelayURL)
	notifier := notification.NewService(notificationRepo, userRepo, pushClient)
	appService := application.NewService(appRepo, jobRepo, resumeRepo, notifier)

	//
	// auth routes
	//

	svr.RegisterRoute("/x/signon", middleware.RateLimitMiddleware(limiter, "signon", 5, time.Minute, handler.RequestTokenSignOn(svr, userRepo)), []string{"POST"})
	svr.RegisterRoute("/x/auth/{token}", handler.VerifyTokenSignOn(svr, userRepo), []string{"GET"})
	svr.RegisterRoute("/x/fcm-token", handler.SaveFCMToken(svr, userRepo), []string{"POST"})
	svr.RegisterRoute("/x/notifications-enabled", handler.ToggleNotifications(svr, userRepo), []string{"POST"})
	svr.RegisterRoute("/x/account", handler.DeleteAccount(svr, userRepo), []string{"DELETE"})

	//
	// job routes
	//

	svr.RegisterRoute("/jobs", handler.PublishedJobs(svr, jobRepo), []string{"GET"})
	svr.RegisterRoute("/jobs/rss", handler.JobsRSSFeed(svr, jobRepo), []string{"GET"})
	svr.RegisterRoute("/job/{slug}", handler.JobBySlug(svr, jobRepo), []string{"GET"})
	svr.RegisterRoute("/x/jobs", handler.CreateJob(svr, jobRepo), []string{"POST"})
	svr.RegisterRoute("/x/jobs", handler.UpdateJob(svr, jobRepo), []string{"PUT"})
	svr.RegisterRoute("/x/jobs/{id}/publish", handler.PublishJob(svr, jobRepo), []string{"POST"})
	svr.RegisterRoute("/x/jobs/{id}/close", handler.CloseJob(svr, jobRepo), []string{"POST"})
	svr.RegisterRoute("/x/jobs/mine", handler.JobsForOwner(svr, jobRepo), []string{"GET"})

	//
	// resume routes
	//

	svr.RegisterRoute("/x/resumes", handler.SaveResume(svr, resumeRepo), []string{"POST"})
	svr.RegisterRoute("/x/resumes/mine", handler.MyResumes(svr, resumeRepo), []string{"GET"})
	svr.RegisterRoute("/x/resumes/{id}", handler.DeleteResume(svr, resumeRepo), []string{"DELETE"})

	//
	// application routes
	//

	svr.RegisterRoute("/x/applications", handler.SubmitApplication(svr, appService), []string{"POST"})
	svr.RegisterRoute("/x/applications/mine", handler.MyApplications(svr, appRepo), []string{"GET"})
	svr.RegisterRoute("/x/applications/{id}", handler.ApplicationDetail(svr, appService), []string{"GET"})
	svr.RegisterRoute("/x/applications/{id}/status", handler.UpdateApplicationStatus(svr, appService), []string{"POST"})

	// recruiter management surface
	svr.RegisterRoute("/x/manage/{jobId}/applicants", handler.ManageApplicants(svr, appService), []string{"GET"})
	svr.RegisterRoute("/x/manage/{jobId}/applicants/status", handler.BulkUpdateApplicationStatus(svr, appService), []string{"POST"})

	//
	// saved jobs
	//

	svr.RegisterRoute("/x/saved-jobs", handler.SavedJobsList(svr, savedRepo), []string{"GET"})
	svr.RegisterRoute("/x/saved-jobs", handler.SaveJob(svr, savedRepo, jobRepo), []string{"POST", "DELETE"})

	//
	// notifications
	//

	svr.RegisterRoute("/x/notifications", handler.MyNotifications(svr, notificationRepo), []string{"GET"})
	svr.RegisterRoute("/x/notifications/{id}/read", handler.MarkNotificationRead(svr, notificationRepo), []string{"POST"})

	//
	// cron-triggered tasks
	//

	svr.RegisterRoute("/x/task/expired-tokens", handler.TriggerExpiredTokensTask(svr, userRepo), []string{"POST"})

	svr.RegisterRoute("/health", func(w http.ResponseWriter, r *http.Request) {
		svr.TEXT(w, http.StatusOK, "OK")
	}, []string{"GET"})

	log.Fatal(svr.Run())
}
