package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"odr-lab/platform/internal/auth"
)

// JoinCollaboratorHandler handles POST /collaboration/{ideaId}/join-collaborator
//
// @Summary      Join an idea as collaborator
// @Description  Adds the caller to the idea's collaborator list. Owners cannot join their own idea.
// @Tags         Collaboration
// @Produce      json
// @Success      201  {object}  responses.APIResponse[responses.JoinAck]
// @Failure      404  {object}  responses.APIResponse[any]
// @Failure      409  {object}  responses.APIResponse[any]
// @Router       /collaboration/{ideaId}/join-collaborator [post]
func JoinCollaboratorHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		ack, err := deps.Services.Collab.JoinCollaborator(r.Context(), user, chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, ack)
	}
}

// LeaveCollaboratorHandler handles DELETE /collaboration/{ideaId}/leave-collaborator
func LeaveCollaboratorHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		if err := deps.Services.Collab.LeaveCollaborator(r.Context(), user.ID, chi.URLParam(r, "ideaId")); err != nil {
			respondWorkflowError(w, err)
			return
		}

		msg := map[string]string{"message": "Left collaboration"}
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// RequestMentorHandler handles POST /collaboration/{ideaId}/request-mentor.
// Only accounts with the MENTOR role pass the service's gate.
func RequestMentorHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		ack, err := deps.Services.Collab.RequestMentor(r.Context(), user, chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, ack)
	}
}

// LeaveMentorHandler handles DELETE /collaboration/{ideaId}/leave-mentor
func LeaveMentorHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())

		if err := deps.Services.Collab.LeaveMentor(r.Context(), user.ID, chi.URLParam(r, "ideaId")); err != nil {
			respondWorkflowError(w, err)
			return
		}

		msg := map[string]string{"message": "Left mentorship"}
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// ListCollaboratorsHandler handles GET /collaboration/{ideaId}/collaborators
func ListCollaboratorsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collaborators, err := deps.Services.Collab.ListCollaborators(r.Context(), chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &collaborators)
	}
}

// ListMentorsHandler handles GET /collaboration/{ideaId}/mentors
func ListMentorsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentors, err := deps.Services.Collab.ListMentors(r.Context(), chi.URLParam(r, "ideaId"))
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &mentors)
	}
}
