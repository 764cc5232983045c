package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/models/dtos/requests"
)

// ListCommentsHandler handles GET /ideas/{ideaId}/comments
//
// @Summary      Comment tree for an idea
// @Description  Returns nested comments for an approved idea, oldest first at every depth.
// @Tags         Discussion
// @Produce      json
// @Success      200  {object}  responses.APIResponse[[]responses.CommentNode]
// @Failure      404  {object}  responses.APIResponse[any]
// @Router       /ideas/{ideaId}/comments [get]
func ListCommentsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comments, err := deps.Services.Discussion.ListComments(r.Context(), chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &comments)
	}
}

// PostCommentHandler handles POST /ideas/{ideaId}/comments
func PostCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		var req requests.PostCommentRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		comment, err := deps.Services.Discussion.PostComment(r.Context(), user, chi.URLParam(r, "ideaId"), req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, comment)
	}
}

// ToggleIdeaLikeHandler handles POST /ideas/{ideaId}/like
func ToggleIdeaLikeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		toggle, err := deps.Services.Discussion.ToggleIdeaLike(r.Context(), user.ID, chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, toggle)
	}
}

// CheckIdeaLikeHandler handles GET /ideas/{ideaId}/like/check
func CheckIdeaLikeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		check, err := deps.Services.Discussion.CheckIdeaLike(r.Context(), user.ID, chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, check)
	}
}

// ToggleCommentLikeHandler handles POST /comments/{commentId}/like
func ToggleCommentLikeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		toggle, err := deps.Services.Discussion.ToggleCommentLike(r.Context(), user.ID, chi.URLParam(r, "commentId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, toggle)
	}
}

// LikedCommentsHandler handles GET /ideas/{ideaId}/comments/liked: the ids
// of comments on this idea the caller has liked, for UI hydration.
func LikedCommentsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		liked, err := deps.Services.Discussion.LikedComments(r.Context(), user.ID, chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, liked)
	}
}
