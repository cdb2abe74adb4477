package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/auth"
	"github.com/ksalau/learnflow-backend/database"
	"github.com/ksalau/learnflow-backend/errs"
	"github.com/ksalau/learnflow-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const oauthStateCookie = "oauth_state"

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	userRepo    *database.UserRepo
	tokens      auth.TokenIssuer
	google      *auth.GoogleAuthenticator
	frontendURL string
	validate    *validator.Validate
}

func newAuthHandler(userRepo *database.UserRepo, tokens auth.TokenIssuer, google *auth.GoogleAuthenticator, frontendURL string, validate *validator.Validate) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		userRepo:    userRepo,
		tokens:      tokens,
		google:      google,
		frontendURL: frontendURL,
		validate:    validate,
	}
}

// LoginRequest is the username/password login payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the local account creation payload
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// login exchanges a username and password for a bearer token. An unknown
// username and a wrong password produce the same 401.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := h.validate.Struct(input); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		user, err := h.userRepo.FindByUsername(input.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil || !auth.CheckPassword(input.Password, user.PasswordHash) {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		if err := h.userRepo.RecordLogin(user.ID); err != nil {
			h.logger.Error().Err(err).Str("userId", user.ID.String()).Msg("Failed to record login time")
		}

		token, err := h.tokens.Issue(user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"user":  user,
			"token": token,
		})
	}
}

// register creates a local account. Duplicate usernames and emails are
// conflicts, not validation failures.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := h.validate.Struct(input); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		existing, err := h.userRepo.FindByUsername(input.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("username already exists"))
			return
		}

		existing, err = h.userRepo.FindByEmail(input.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("email already exists"))
			return
		}

		passwordHash, err := auth.HashPassword(input.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		user := models.NewUser(models.InsertUser{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: passwordHash,
			Role:         input.Role,
		})
		if err := h.userRepo.Add(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{"user": user})
	}
}

// me returns the identity resolved by the authentication middleware.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())
		if user == nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, map[string]any{"user": user})
	}
}

// revokeSessions bumps the caller's token version, invalidating every token
// issued so far, including the one used for this request.
func (h authHandler) revokeSessions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxGetUser(r.Context())
		if user == nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		if err := h.userRepo.BumpTokenVersion(user.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "all sessions revoked",
		})
	}
}

// googleLogin starts the federated login handoff.
func (h authHandler) googleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.google == nil || !h.google.Enabled() {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "google OAuth not configured"))
			return
		}

		state := uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     oauthStateCookie,
			Value:    state,
			Path:     "/",
			Expires:  time.Now().Add(10 * time.Minute),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, h.google.LoginURL(state), http.StatusTemporaryRedirect)
	}
}

// googleCallback completes the federated login: a successful exchange
// redirects to the frontend with the token in the query string, any failure
// redirects to an error-carrying login URL.
func (h authHandler) googleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.google == nil || !h.google.Enabled() {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "google OAuth not configured"))
			return
		}

		cookie, err := r.Cookie(oauthStateCookie)
		if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
			h.redirectLoginError(w, r, "invalid_state")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			h.redirectLoginError(w, r, "google_auth_failed")
			return
		}

		user, err := h.google.Exchange(r.Context(), code)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrNotAllowed), errors.Is(err, auth.ErrNoEmail):
				h.redirectLoginError(w, r, "unauthorized_email")
			default:
				h.logger.Error().Err(err).Msg("Google OAuth exchange failed")
				h.redirectLoginError(w, r, "google_auth_failed")
			}
			return
		}

		token, err := h.tokens.Issue(user)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue token after federated login")
			h.redirectLoginError(w, r, "server_error")
			return
		}

		http.Redirect(w, r, h.frontendURL+"/auth/callback?token="+url.QueryEscape(token), http.StatusTemporaryRedirect)
	}
}

func (h authHandler) redirectLoginError(w http.ResponseWriter, r *http.Request, reason string) {
	http.Redirect(w, r, h.frontendURL+"/login?error="+url.QueryEscape(reason), http.StatusTemporaryRedirect)
}
