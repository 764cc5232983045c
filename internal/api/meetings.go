package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/models/dtos/requests"
)

// CreateMeetingHandler handles POST /meetings
func CreateMeetingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		var req requests.CreateMeetingRequest
		if !decodeJSON(r, &req) || req.IdeaID == "" {
			respondWithError(w, http.StatusBadRequest, "ideaId is required")
			return
		}

		meeting, err := deps.Services.Meetings.Create(r.Context(), user, req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, meeting)
	}
}

// GetMeetingHandler handles GET /meetings/{meetingId}
func GetMeetingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meeting, err := deps.Services.Meetings.Get(r.Context(), chi.URLParam(r, "meetingId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, meeting)
	}
}

// ListMeetingsHandler handles GET /ideas/{ideaId}/meetings
func ListMeetingsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meetings, err := deps.Services.Meetings.ListByIdea(r.Context(), chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &meetings)
	}
}

// UpdateMeetingStatusHandler handles PATCH /meetings/{meetingId}/status
func UpdateMeetingStatusHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateMeetingStatusRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Meetings.UpdateStatus(r.Context(), chi.URLParam(r, "meetingId"), req.Status); err != nil {
			respondWorkflowError(w, err)
			return
		}

		msg := map[string]string{"message": "Meeting status updated"}
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// JaaSTokenHandler handles GET /meetings/{meetingId}/jaas-token
//
// @Summary      Issue a video-room join token
// @Description  Returns a short-lived signed token for the meeting's Jitsi room.
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  responses.APIResponse[responses.MeetingToken]
// @Failure      404  {object}  responses.APIResponse[any]
// @Router       /meetings/{meetingId}/jaas-token [get]
func JaaSTokenHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		token, err := deps.Services.Meetings.IssueToken(r.Context(), user, chi.URLParam(r, "meetingId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, token)
	}
}
