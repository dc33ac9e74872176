package controllers

import (
	"net/http"

	"github.com/luciaferrante/roomvibe-backend/api/middleware"
	"github.com/luciaferrante/roomvibe-backend/api/responses"
	"github.com/luciaferrante/roomvibe-backend/api/validators"
	"github.com/luciaferrante/roomvibe-backend/internal/auth"
	"github.com/luciaferrante/roomvibe-backend/pkg/config"
	pkgerrors "github.com/luciaferrante/roomvibe-backend/pkg/errors"
	"github.com/luciaferrante/roomvibe-backend/pkg/logger"
)

// SignupPage returns the signup view descriptor.
func SignupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"view":        "signup",
			"form_action": "/signup",
			"fields":      []string{"name", "email", "contact_number", "password", "confirm_password"},
		})
	}
}

// Signup creates an account. Success never logs the user in; browser form
// posts get redirected to the login page and API clients get the created
// user back.
func Signup(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		isForm := validators.IsFormRequest(r)
		var body auth.SignupRequest
		if isForm {
			if err := decodeSignupForm(r, &body); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		} else if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		user, err := svc.Signup(ctx, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if isForm {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// LoginPage returns the login view descriptor.
func LoginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"view":        "login",
			"form_action": "/login",
			"fields":      []string{"email", "password"},
		})
	}
}

// Login verifies credentials and sets the session cookie. Browser form posts
// bounce to the home view; API clients get the user envelope.
func Login(svc auth.Service, sessionCfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		isForm := validators.IsFormRequest(r)
		var body auth.LoginRequest
		if isForm {
			if err := decodeLoginForm(r, &body); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		} else if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Login(ctx, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		http.SetCookie(w, middleware.SessionCookie(sessionCfg, result.SessionID, int(sessionCfg.TTL.Seconds())))

		if isForm {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		responses.WriteSuccess(w, result.User)
	}
}

// Logout destroys the server-side session, clears the cookie and sends the
// user back to the home view. Logging out without a session is harmless.
func Logout(svc auth.Service, sessionCfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if svc != nil {
			if sessionID := middleware.SessionIDFromRequest(r, sessionCfg); sessionID != "" {
				if err := svc.Logout(ctx, sessionID); err != nil && logg != nil {
					// The cookie still gets cleared; the record expires on its own.
					logg.Warn(logg.WithField(ctx, "error", err.Error()), "session.destroy.failed")
				}
			}
		}

		middleware.ClearSessionCookie(w, sessionCfg)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func decodeSignupForm(r *http.Request, dest *auth.SignupRequest) error {
	if err := validators.ParseForm(r); err != nil {
		return err
	}
	dest.Name = validators.FormValue(r, "name")
	dest.Email = validators.FormValue(r, "email")
	dest.ContactNumber = validators.FormValue(r, "contact_number")
	dest.Password = r.PostForm.Get("password")
	dest.ConfirmPassword = r.PostForm.Get("confirm_password")
	return validators.ValidateStruct(dest)
}

func decodeLoginForm(r *http.Request, dest *auth.LoginRequest) error {
	if err := validators.ParseForm(r); err != nil {
		return err
	}
	dest.Email = validators.FormValue(r, "email")
	dest.Password = r.PostForm.Get("password")
	return validators.ValidateStruct(dest)
}
