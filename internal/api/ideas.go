package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/models/dtos/requests"
)

// ApprovedIdeasHandler handles GET /ideas/approved
//
// @Summary      List published ideas
// @Description  Returns every approved idea with owner info and like/comment counts.
// @Tags         Ideas
// @Produce      json
// @Success      200  {object}  responses.APIResponse[[]responses.IdeaSummary]
// @Router       /ideas/approved [get]
func ApprovedIdeasHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideas, err := deps.Services.Ideas.ListApproved(r.Context())
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &ideas)
	}
}

// IdeaDetailHandler handles GET /ideas/{ideaId}
func IdeaDetailHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := deps.Services.Ideas.GetDetail(r.Context(), chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, detail)
	}
}

// UpdateIdeaHandler handles PUT /ideas/{ideaId}. Owner or admin only; the
// service enforces that.
func UpdateIdeaHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		var req requests.UpdateIdeaRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		idea, err := deps.Services.Ideas.Update(r.Context(), user, chi.URLParam(r, "ideaId"), req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, idea)
	}
}

// DeleteIdeaHandler handles DELETE /ideas/{ideaId}
func DeleteIdeaHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		if err := deps.Services.Ideas.Delete(r.Context(), user, chi.URLParam(r, "ideaId")); err != nil {
			respondWorkflowError(w, err)
			return
		}

		msg := map[string]string{"message": "Idea deleted"}
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
