package routes

import (
	"github.com/go-chi/chi/v5"

	"odr-lab/platform/internal/api"
	"odr-lab/platform/internal/middleware"
)

// RegisterAPIRoutes registers every API route. Route registration stays
// separate from router construction so tests can mount the tree on their own
// router.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, jwtSecret string, limiter *middleware.RateLimiter) {

	// Credential endpoints: no session yet, throttled per client IP
	r.Group(func(public chi.Router) {
		public.Use(limiter.Middleware)
		public.Post("/auth/signup", api.SignupHandler(deps))
		public.Post("/auth/login", api.LoginHandler(deps))
	})

	// Everything below requires a valid session
	r.Group(func(authed chi.Router) {
		authed.Use(middleware.AuthMiddleware(jwtSecret, deps.Repo.Users))

		authed.Get("/auth/session", api.SessionHandler(deps))
		authed.Put("/auth/profile", api.UpdateProfileHandler(deps))

		authed.Post("/submit-idea", api.SubmitIdeaHandler(deps))

		authed.Get("/ideas/approved", api.ApprovedIdeasHandler(deps))
		authed.Get("/ideas/{ideaId}", api.IdeaDetailHandler(deps))
		authed.Put("/ideas/{ideaId}", api.UpdateIdeaHandler(deps))
		authed.Delete("/ideas/{ideaId}", api.DeleteIdeaHandler(deps))

		authed.Get("/ideas/{ideaId}/comments", api.ListCommentsHandler(deps))
		authed.Post("/ideas/{ideaId}/comments", api.PostCommentHandler(deps))
		authed.Get("/ideas/{ideaId}/comments/liked", api.LikedCommentsHandler(deps))
		authed.Post("/ideas/{ideaId}/like", api.ToggleIdeaLikeHandler(deps))
		authed.Get("/ideas/{ideaId}/like/check", api.CheckIdeaLikeHandler(deps))
		authed.Post("/comments/{commentId}/like", api.ToggleCommentLikeHandler(deps))

		authed.Post("/collaboration/{ideaId}/join-collaborator", api.JoinCollaboratorHandler(deps))
		authed.Delete("/collaboration/{ideaId}/leave-collaborator", api.LeaveCollaboratorHandler(deps))
		authed.Post("/collaboration/{ideaId}/request-mentor", api.RequestMentorHandler(deps))
		authed.Delete("/collaboration/{ideaId}/leave-mentor", api.LeaveMentorHandler(deps))
		authed.Get("/collaboration/{ideaId}/collaborators", api.ListCollaboratorsHandler(deps))
		authed.Get("/collaboration/{ideaId}/mentors", api.ListMentorsHandler(deps))

		authed.Post("/meetings", api.CreateMeetingHandler(deps))
		authed.Get("/meetings/{meetingId}", api.GetMeetingHandler(deps))
		authed.Patch("/meetings/{meetingId}/status", api.UpdateMeetingStatusHandler(deps))
		authed.Get("/meetings/{meetingId}/jaas-token", api.JaaSTokenHandler(deps))
		authed.Get("/ideas/{ideaId}/meetings", api.ListMeetingsHandler(deps))

		// Admin-only group
		authed.Group(func(admin chi.Router) {
			admin.Use(middleware.IsAdminMiddleware())

			admin.Get("/admin/ideas/pending", api.PendingSubmissionsHandler(deps))
			admin.Post("/admin/approve-idea", api.ApproveSubmissionHandler(deps))
			admin.Post("/admin/reject-idea", api.RejectSubmissionHandler(deps))
			admin.Post("/admin/ideas/{ideaId}/approve", api.ApproveIdeaDirectHandler(deps))

			admin.Get("/admin/ideas", api.ListAllIdeasHandler(deps))
			admin.Post("/admin/ideas", api.CreateIdeaHandler(deps))

			admin.Get("/admin/users", api.ListUsersHandler(deps))
			admin.Get("/admin/users/{userId}", api.GetUserHandler(deps))
			admin.Put("/admin/users/{userId}", api.UpdateUserHandler(deps))
			admin.Delete("/admin/users/{userId}", api.DeleteUserHandler(deps))

			admin.Get("/admin/analytics", api.AnalyticsHandler(deps))
		})
	})
}
