package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luciaferrante/roomvibe-backend/api/controllers"
	"github.com/luciaferrante/roomvibe-backend/api/middleware"
	"github.com/luciaferrante/roomvibe-backend/internal/auth"
	"github.com/luciaferrante/roomvibe-backend/internal/designs"
	"github.com/luciaferrante/roomvibe-backend/internal/users"
	"github.com/luciaferrante/roomvibe-backend/pkg/config"
	"github.com/luciaferrante/roomvibe-backend/pkg/db"
	"github.com/luciaferrante/roomvibe-backend/pkg/logger"
	"github.com/luciaferrante/roomvibe-backend/pkg/metrics"
	"github.com/luciaferrante/roomvibe-backend/pkg/redis"
	"github.com/luciaferrante/roomvibe-backend/pkg/session"
)

// NewRouter assembles the HTTP surface: the public pages, the auth endpoints
// and the session-guarded design endpoints.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions session.Resolver,
	authService auth.Service,
	designsService designs.Service,
	usersRepo users.Finder,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalSession(cfg.Session, sessions, logg))
		r.Get("/", controllers.Home(usersRepo))
		r.Get("/getUserChoices", controllers.GetUserChoices(designsService, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore, middleware.RedirectIfAuthenticated(cfg.Session, sessions))
		r.Get("/signup", controllers.SignupPage())
		r.Get("/login", controllers.LoginPage())
		r.With(middleware.AuthRateLimit(signupPolicy, redisClient, logg)).
			Post("/signup", controllers.Signup(authService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
			Post("/login", controllers.Login(authService, cfg.Session, logg))
	})

	r.With(middleware.NoStore).Get("/logout", controllers.Logout(authService, cfg.Session, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(cfg.Session, sessions, logg))
		r.Post("/saveDesign", controllers.SaveDesign(designsService, logg))
	})

	return r
}
