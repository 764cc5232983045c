package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/models/dtos/requests"
)

// PendingSubmissionsHandler handles GET /admin/ideas/pending
//
// @Summary      List pending submissions
// @Description  Returns unreviewed submissions, newest first, with owner info.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  responses.APIResponse[[]responses.PendingSubmission]
// @Router       /admin/ideas/pending [get]
func PendingSubmissionsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := deps.Services.Submissions.ListPending(r.Context())
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &pending)
	}
}

// ApproveSubmissionHandler handles POST /admin/approve-idea
//
// The body field is named ideaId for compatibility with existing clients,
// but it carries the pending submission's id.
func ApproveSubmissionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin := auth.GetCurrentUser(r.Context())

		var req requests.ApproveIdeaRequest
		if !decodeJSON(r, &req) || req.IdeaID == "" {
			respondWithError(w, http.StatusBadRequest, "ideaId is required")
			return
		}

		idea, err := deps.Services.Submissions.Approve(r.Context(), admin.ID, req.IdeaID)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, idea)
	}
}

// RejectSubmissionHandler handles POST /admin/reject-idea
func RejectSubmissionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin := auth.GetCurrentUser(r.Context())

		var req requests.RejectIdeaRequest
		if !decodeJSON(r, &req) || req.SubmissionID == "" {
			respondWithError(w, http.StatusBadRequest, "submissionId is required")
			return
		}

		if err := deps.Services.Submissions.Reject(r.Context(), admin.ID, req.SubmissionID, req.Reason); err != nil {
			respondWorkflowError(w, err)
			return
		}

		msg := map[string]string{"message": "Submission rejected"}
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// ApproveIdeaDirectHandler handles POST /admin/ideas/{ideaId}/approve.
//
// Deprecated alias kept for clients that approve a published-but-unapproved
// idea by its own id. New clients should use /admin/approve-idea.
func ApproveIdeaDirectHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin := auth.GetCurrentUser(r.Context())
		ideaID := chi.URLParam(r, "ideaId")

		if err := deps.Services.Submissions.ApproveIdeaDirect(r.Context(), admin.ID, ideaID); err != nil {
			respondWorkflowError(w, err)
			return
		}

		msg := map[string]string{"message": "Idea approved"}
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// ListAllIdeasHandler handles GET /admin/ideas
func ListAllIdeasHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideas, err := deps.Services.Ideas.ListAll(r.Context())
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &ideas)
	}
}

// CreateIdeaHandler handles POST /admin/ideas, direct creation of an
// already-approved idea, bypassing the submission queue.
func CreateIdeaHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin := auth.GetCurrentUser(r.Context())

		var req requests.CreateIdeaRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		idea, err := deps.Services.Ideas.CreateDirect(r.Context(), admin.ID, req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, idea)
	}
}

// ListUsersHandler handles GET /admin/users
func ListUsersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := deps.Services.Admin.ListUsers(r.Context())
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &users)
	}
}

// GetUserHandler handles GET /admin/users/{userId}
func GetUserHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := deps.Services.Admin.GetUser(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, profile)
	}
}

// UpdateUserHandler handles PUT /admin/users/{userId}
func UpdateUserHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateUserRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		profile, err := deps.Services.Admin.UpdateUser(r.Context(), chi.URLParam(r, "userId"), req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, profile)
	}
}

// DeleteUserHandler handles DELETE /admin/users/{userId}
func DeleteUserHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Admin.DeleteUser(r.Context(), chi.URLParam(r, "userId")); err != nil {
			respondWorkflowError(w, err)
			return
		}

		msg := map[string]string{"message": "User deleted"}
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// AnalyticsHandler handles GET /admin/analytics
//
// @Summary      Platform analytics
// @Description  Aggregate counts for the admin dashboard.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  responses.APIResponse[responses.Analytics]
// @Router       /admin/analytics [get]
func AnalyticsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analytics, err := deps.Services.Admin.Analytics(r.Context())
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, analytics)
	}
}
