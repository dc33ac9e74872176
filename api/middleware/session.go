package middleware

import (
	"errors"
	"net/http"

	"github.com/luciaferrante/roomvibe-backend/api/responses"
	"github.com/luciaferrante/roomvibe-backend/pkg/config"
	pkgerrors "github.com/luciaferrante/roomvibe-backend/pkg/errors"
	"github.com/luciaferrante/roomvibe-backend/pkg/logger"
	"github.com/luciaferrante/roomvibe-backend/pkg/session"
)

const loginPath = "/login"

// SessionIDFromRequest extracts the opaque session id from the cookie, or ""
// when the cookie is absent.
func SessionIDFromRequest(r *http.Request, cfg config.SessionConfig) string {
	cookie, err := r.Cookie(cfg.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SessionCookie builds the session cookie. A negative maxAge clears it.
func SessionCookie(cfg config.SessionConfig, value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if cfg.CookieSecure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: sameSite,
	}
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(w http.ResponseWriter, cfg config.SessionConfig) {
	http.SetCookie(w, SessionCookie(cfg, "", -1))
}

func resolveSession(r *http.Request, cfg config.SessionConfig, resolver session.Resolver) (*session.Identity, error) {
	sessionID := SessionIDFromRequest(r, cfg)
	if sessionID == "" {
		return nil, session.ErrNoSession
	}
	return resolver.Resolve(r.Context(), sessionID)
}

// RequireSession rejects requests without a valid session. Missing, expired
// and malformed sessions all get the same 401 with a login redirect hint.
func RequireSession(cfg config.SessionConfig, resolver session.Resolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolveSession(r, cfg, resolver)
			if err != nil {
				ctx := r.Context()
				if errors.Is(err, session.ErrNoSession) {
					ClearSessionCookie(w, cfg)
					responses.WriteError(ctx, nil, w,
						pkgerrors.New(pkgerrors.CodeUnauthorized, "please log in to access this page").
							WithDetails(map[string]string{"redirect": loginPath}))
					return
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolving session"))
				return
			}

			ctx := WithIdentity(r.Context(), identity.UserID, identity.UserName)
			if logg != nil {
				ctx = logg.WithUserID(ctx, identity.UserID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession attaches the identity when a valid session is present and
// lets the request through anonymously otherwise. Session store outages only
// degrade to anonymous here; endpoints that require auth use RequireSession.
func OptionalSession(cfg config.SessionConfig, resolver session.Resolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolveSession(r, cfg, resolver)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) && logg != nil {
					logg.Warn(logg.WithField(r.Context(), "error", err.Error()), "session.resolve.degraded")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithIdentity(r.Context(), identity.UserID, identity.UserName)
			if logg != nil {
				ctx = logg.WithUserID(ctx, identity.UserID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RedirectIfAuthenticated bounces logged-in users away from the signup and
// login pages to the home view.
func RedirectIfAuthenticated(cfg config.SessionConfig, resolver session.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := resolveSession(r, cfg, resolver); err == nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
