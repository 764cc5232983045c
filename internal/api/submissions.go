package api

import (
	"net/http"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/models/dtos/requests"
)

// SubmitIdeaHandler handles POST /submit-idea
//
// @Summary      Submit an idea for review
// @Description  Creates a pending submission that an admin must approve before it appears publicly.
// @Tags         Ideas
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.APIResponse[responses.SubmissionAck]
// @Failure      400  {object}  responses.APIResponse[any]
// @Router       /submit-idea [post]
func SubmitIdeaHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())
		if user == nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		var req requests.SubmitIdeaRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		ack, err := deps.Services.Submissions.SubmitIdea(r.Context(), user.ID, req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, ack)
	}
}
