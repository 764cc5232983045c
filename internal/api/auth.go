package api

import (
	"net/http"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/models/dtos/requests"
)

// SignupHandler handles POST /auth/signup
//
// @Summary      Register a new account
// @Description  Creates an account and returns a session token plus the profile.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.APIResponse[responses.AuthResponse]
// @Failure      400  {object}  responses.APIResponse[any]
// @Failure      409  {object}  responses.APIResponse[any]
// @Router       /auth/signup [post]
func SignupHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SignupRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := deps.Services.Auth.Signup(r.Context(), req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, resp)
	}
}

// LoginHandler handles POST /auth/login
//
// @Summary      Log in
// @Description  Verifies credentials and returns a session token plus the profile.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  responses.APIResponse[responses.AuthResponse]
// @Failure      401  {object}  responses.APIResponse[any]
// @Router       /auth/login [post]
func LoginHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.LoginRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := deps.Services.Auth.Login(r.Context(), req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, resp)
	}
}

// SessionHandler handles GET /auth/session
//
// @Summary      Current session
// @Description  Returns the profile of the authenticated account.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.APIResponse[responses.SessionResponse]
// @Failure      401  {object}  responses.APIResponse[any]
// @Router       /auth/session [get]
func SessionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())
		if user == nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		respondWithSuccess(w, http.StatusOK, deps.Services.Auth.Session(user))
	}
}

// UpdateProfileHandler handles PUT /auth/profile
func UpdateProfileHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetCurrentUser(r.Context())
		if user == nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		var req requests.UpdateProfileRequest
		if !decodeJSON(r, &req) {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		profile, err := deps.Services.Auth.UpdateProfile(r.Context(), user, req)
		if err != nil {
			respondWorkflowError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, profile)
	}
}
