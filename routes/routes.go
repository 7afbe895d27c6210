package routes

import (
	"ustabul/applications"
	"ustabul/auth"
	"ustabul/employers"
	"ustabul/jobs"
	"ustabul/locations"
	"ustabul/middleware"
	"ustabul/models"
	"ustabul/ratelim"
	"ustabul/reviews"
	"ustabul/search"
	"ustabul/taxonomy"
	"ustabul/workers"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.GET("/api/auth/me", middleware.Authenticate(auth.GetMe))
	router.PUT("/api/auth/update-profile", middleware.Authenticate(auth.UpdateProfile))
	router.POST("/api/auth/change-password", ratelim.RateLimit(middleware.Authenticate(auth.ChangePassword)))
}

// Single-entity lookups live under a static "worker" segment so that the
// router can keep the other static paths in the same subtree.
func AddWorkerRoutes(router *httprouter.Router) {
	router.GET("/api/workers/profile", middleware.Authenticate(middleware.RequireRole(models.UserTypeWorker, workers.GetProfile)))
	router.PUT("/api/workers/profile", middleware.Authenticate(middleware.RequireRole(models.UserTypeWorker, workers.UpsertProfile)))
	router.POST("/api/workers/profile", middleware.Authenticate(middleware.RequireRole(models.UserTypeWorker, workers.UpsertProfile)))
	router.GET("/api/workers/matched-jobs", middleware.Authenticate(middleware.RequireRole(models.UserTypeWorker, workers.GetMatchedJobs)))
	router.GET("/api/workers/my-applications", middleware.Authenticate(middleware.RequireRole(models.UserTypeWorker, applications.GetMyApplications)))
	router.GET("/api/workers/search", ratelim.RateLimit(workers.SearchWorkers))
	router.GET("/api/workers/worker/:id", workers.GetPublicProfile)
}

func AddEmployerRoutes(router *httprouter.Router) {
	router.GET("/api/employers/profile", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, employers.GetProfile)))
	router.PUT("/api/employers/profile", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, employers.UpsertProfile)))
	router.POST("/api/employers/profile", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, employers.UpsertProfile)))
	router.GET("/api/employers/dashboard", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, employers.GetDashboard)))
	router.GET("/api/employers/my-jobs", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, jobs.GetMyJobs)))
	router.GET("/api/employers/employer/:id", employers.GetPublicProfile)
}

func AddJobRoutes(router *httprouter.Router) {
	router.POST("/api/jobs", ratelim.RateLimit(middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, jobs.CreateJob))))
	router.GET("/api/jobs", ratelim.RateLimit(jobs.GetJobs))
	router.GET("/api/jobs/:id", jobs.GetJob)
	router.PUT("/api/jobs/:id", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, jobs.UpdateJob)))
	router.DELETE("/api/jobs/:id", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, jobs.DeleteJob)))
	router.PATCH("/api/jobs/:id/publish", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, jobs.PublishJob)))
	router.PATCH("/api/jobs/:id/close", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, jobs.CloseJob)))
	router.PATCH("/api/jobs/:id/status", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, jobs.UpdateJobStatus)))
	router.GET("/api/jobs/:id/applications", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, applications.GetJobApplications)))
}

func AddApplicationRoutes(router *httprouter.Router) {
	router.POST("/api/applications", ratelim.RateLimit(middleware.Authenticate(middleware.RequireRole(models.UserTypeWorker, applications.CreateApplication))))
	router.GET("/api/applications/:id", middleware.Authenticate(applications.GetApplication))
	router.PATCH("/api/applications/:id/withdraw", middleware.Authenticate(middleware.RequireRole(models.UserTypeWorker, applications.WithdrawApplication)))
	router.PATCH("/api/applications/:id/reject", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, applications.RejectApplication)))
	router.PATCH("/api/applications/:id/accept", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, applications.AcceptApplication)))
	router.PATCH("/api/applications/:id/status", middleware.Authenticate(middleware.RequireRole(models.UserTypeEmployer, applications.UpdateApplicationStatus)))
}

func AddReviewRoutes(router *httprouter.Router) {
	router.POST("/api/reviews", ratelim.RateLimit(middleware.Authenticate(reviews.CreateReview)))
	router.GET("/api/reviews/user/:userId", reviews.GetUserReviews)
	router.POST("/api/reviews/review/:id/response", middleware.Authenticate(reviews.RespondToReview))
	router.POST("/api/reviews/review/:id/report", middleware.Authenticate(reviews.ReportReview))
}

func AddSkillRoutes(router *httprouter.Router) {
	router.GET("/api/skills/categories", taxonomy.GetCategories)
	router.GET("/api/skills/job-categories", taxonomy.GetJobCategories)
	router.GET("/api/skills/subcategories/:main", taxonomy.GetSubCategories)
}

func AddLocationRoutes(router *httprouter.Router) {
	router.GET("/api/locations/cities", locations.GetCities)
	router.GET("/api/locations/districts/:city", locations.GetDistricts)
}

func AddSearchRoutes(router *httprouter.Router) {
	router.GET("/api/search", ratelim.RateLimit(search.SearchHandler))
}
