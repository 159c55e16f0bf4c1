package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/confhub/confhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func TestStartup_AppliesTimeoutOverrides(t *testing.T) {
	defer timeouts.Reset()

	appCfg := AppConfig{
		BaseURL:              "http://localhost:3000",
		QueryTimeoutLongSecs: 45,
	}
	if err := Startup(context.Background(), &config.CoreConfig{}, appCfg, DBDeps{}, zap.NewNop()); err != nil {
		t.Fatalf("Startup: %v", err)
	}

	if timeouts.Long() != 45*time.Second {
		t.Errorf("Long: got %v, want 45s", timeouts.Long())
	}
	// Unset overrides keep the defaults.
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium: got %v, want %v", timeouts.Medium(), timeouts.DefaultMedium)
	}
}
