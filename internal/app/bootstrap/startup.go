// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/confhub/confhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Reset()
	timeouts.Configure(timeouts.Config{
		Medium: time.Duration(appCfg.QueryTimeoutMediumSecs) * time.Second,
		Long:   time.Duration(appCfg.QueryTimeoutLongSecs) * time.Second,
	})
	logger.Info("confhub starting",
		zap.String("env", coreCfg.Env),
		zap.String("base_url", appCfg.BaseURL),
	)
	return nil
}
