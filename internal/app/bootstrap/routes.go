// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/confhub/confhub/internal/app/features/dashboard"
	errorsfeature "github.com/confhub/confhub/internal/app/features/errors"
	healthfeature "github.com/confhub/confhub/internal/app/features/health"
	loginfeature "github.com/confhub/confhub/internal/app/features/login"
	logoutfeature "github.com/confhub/confhub/internal/app/features/logout"
	dashboardstore "github.com/confhub/confhub/internal/app/store/dashboard"
	userstore "github.com/confhub/confhub/internal/app/store/users"
	"github.com/confhub/confhub/internal/app/system/auth"
	"github.com/confhub/confhub/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. ConfHub applies request-id and
// session middleware globally, then mounts the health, auth, and
// dashboard feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on
	// each request. Role changes and disabled accounts take effect
	// immediately instead of at next sign-in.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.ConfHubMongoDatabase, logger))

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global middleware: request IDs for log correlation, then the session
	// user loaded into context for auth.CurrentUser(r).
	r.Use(requestid.Middleware)
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.ConfHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication.
	users := userstore.New(deps.ConfHubMongoDatabase)
	loginHandler := loginfeature.NewHandler(users, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Dashboard aggregation.
	agg := dashboardfeature.NewAggregator(dashboardstore.New(deps.ConfHubMongoDatabase), nil)
	dashboardHandler := dashboardfeature.NewHandler(agg, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	return r, nil
}
