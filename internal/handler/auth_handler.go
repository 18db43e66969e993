/*
Package handler provides HTTP handler functions for account registration,
login, and logout.
*/
package handler

import (
	"net/http"

	"carai/internal/app/session"
	"carai/internal/pkg/auth/jwt"
	"carai/internal/pkg/errs"
	"carai/internal/pkg/logx"
	"carai/internal/pkg/req"
	"carai/internal/pkg/resp"
)

type CredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// openSession creates a fresh session for the username, issues its token, and
// writes the standard login response: the token plus the seeded display
// history (the assistant greeting).
func openSession(w http.ResponseWriter, r *http.Request, deps *AppDeps, username string) {
	sess := deps.Sessions.Create(username)

	payload := &jwt.Payload{
		SessionID: sess.ID,
		Username:  username,
	}

	token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionTokenExpiration)
	if err != nil {
		logx.Error(err, "failed to generate session token", "username", username)
		deps.Sessions.Delete(sess.ID)
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return
	}

	resp.RespondSuccess(w, r, map[string]any{
		"token":    token,
		"username": username,
		"display":  sess.DisplayWindow(),
	})
}

// HandleRegister creates a new account from username and password and signs
// the caller straight in.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload := jwt.GetPayloadFromContext(r); payload != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input CredentialsInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := deps.Auth.Register(r.Context(), input.Username, input.Password); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		logx.Info("Account registered", "username", input.Username)

		openSession(w, r, deps, input.Username)
	}
}

// HandleLogin verifies credentials and opens a fresh conversation session.
// Logging in again replaces any previous session for the same username.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload := jwt.GetPayloadFromContext(r); payload != nil {
			// A token alone is not enough: the session behind it may have been
			// swept. Only refuse when the session is still live.
			if _, customErr := deps.Sessions.Get(payload.SessionID); customErr == nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
				return
			}
		}

		var input CredentialsInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !deps.Auth.Authenticate(r.Context(), input.Username, input.Password) {
			logx.Warn("login rejected: credential mismatch", "username", input.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		openSession(w, r, deps, input.Username)
	}
}

// HandleLogout drops the caller's session. The conversation state is discarded
// with it; a later login starts from the greeting again.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := jwt.GetPayloadFromContext(r)
		if payload == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		deps.Sessions.Delete(payload.SessionID)

		resp.RespondSuccess(w, r, map[string]any{
			"username": payload.Username,
		})
	}
}

// requireSession resolves the caller's live session from the request identity.
func requireSession(r *http.Request, deps *AppDeps) (*session.Session, *errs.CustomError) {
	payload := jwt.GetPayloadFromContext(r)
	if payload == nil {
		return nil, errs.NewError(errs.ErrUnauthorized)
	}

	return deps.Sessions.Get(payload.SessionID)
}
