package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/acortes/studytrack/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 168, cfg.Risk.HorizonHours)
	require.InDelta(t, 0.5, cfg.Risk.Weights.Urgency, 1e-9)
	require.InDelta(t, 0.3, cfg.Risk.Weights.Workload, 1e-9)
	require.InDelta(t, 0.2, cfg.Risk.Weights.Priority, 1e-9)
	require.InDelta(t, 8.0, cfg.Plan.DailyHoursBudget, 1e-9)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STUDYTRACK_DB_PATH", "/tmp/other.db")
	t.Setenv("STUDYTRACK_HORIZON_HOURS", "72")
	t.Setenv("STUDYTRACK_DAILY_HOURS", "4.5")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/other.db", cfg.DB.Path)
	require.Equal(t, 72, cfg.Risk.HorizonHours)
	require.InDelta(t, 4.5, cfg.Plan.DailyHoursBudget, 1e-9)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
risk:
  horizon_hours: 120
  weights:
    urgency: 0.4
    workload: 0.4
    priority: 0.2
plan:
  daily_hours_budget: 6
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("STUDYTRACK_CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 120, cfg.Risk.HorizonHours)
	require.InDelta(t, 0.4, cfg.Risk.Weights.Urgency, 1e-9)
	require.InDelta(t, 6.0, cfg.Plan.DailyHoursBudget, 1e-9)
}

func TestLoad_BadHorizonEnv(t *testing.T) {
	t.Setenv("STUDYTRACK_HORIZON_HOURS", "soon")

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrConfig)
}

func TestValidate(t *testing.T) {
	base := func() config.Config {
		return config.Config{
			Risk: config.RiskConfig{
				HorizonHours: 168,
				Weights:      config.Weights{Urgency: 0.5, Workload: 0.3, Priority: 0.2},
			},
			Plan: config.PlanConfig{DailyHoursBudget: 8},
		}
	}

	require.NoError(t, base().Validate())

	cfg := base()
	cfg.Risk.HorizonHours = 0
	require.ErrorIs(t, cfg.Validate(), config.ErrConfig)

	cfg = base()
	cfg.Risk.Weights.Workload = 0.4
	require.ErrorIs(t, cfg.Validate(), config.ErrConfig)

	cfg = base()
	cfg.Risk.Weights = config.Weights{Urgency: 1.5, Workload: -0.5, Priority: 0}
	require.ErrorIs(t, cfg.Validate(), config.ErrConfig)

	cfg = base()
	cfg.Plan.DailyHoursBudget = -1
	require.ErrorIs(t, cfg.Validate(), config.ErrConfig)
}
