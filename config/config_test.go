package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/tsptour/config"
	"github.com/katalvlaran/tsptour/deadline"
	"github.com/katalvlaran/tsptour/tsp"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Second, cfg.TimeLimit)
	assert.Equal(t, tsp.DefaultOptions(), cfg.Options())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestParse_Overlay(t *testing.T) {
	cfg, err := config.Parse([]byte("time-limit: 1m30s\nnn-starts: 10\nlog-level: DEBUG\n"))
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.TimeLimit)
	assert.Equal(t, 10, cfg.SampleStarts)
	assert.Equal(t, tsp.DefaultExhaustiveBelow, cfg.ExhaustiveBelow, "unset keys keep defaults")
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "limit: 3s\n",
		"bad duration":   "time-limit: soon\n",
		"zero limit":     "time-limit: 0s\n",
		"zero seconds":   "time-limit: 0\n",
		"negative limit": "time-limit: -5\n",
		"infinite limit": "time-limit: .inf\n",
		"limit as list":  "time-limit: [1, 2]\n",
		"bad unlimited":  "unlimited: maybe\n",
		"zero starts":    "nn-starts: 0\n",
		"negative bound": "exhaustive-below: -1\n",
		"bad level":      "log-level: loud\n",
		"malformed yaml": "time-limit: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_TimeLimitSeconds(t *testing.T) {
	for doc, want := range map[string]time.Duration{
		"time-limit: 300\n":    300 * time.Second,
		"time-limit: 1.5\n":    1500 * time.Millisecond,
		"time-limit: \"45\"\n": 45 * time.Second,
		"time-limit: 2m\n":     2 * time.Minute,
	} {
		cfg, err := config.Parse([]byte(doc))
		require.NoError(t, err, doc)
		assert.Equal(t, want, cfg.TimeLimit, doc)
	}
}

func TestParse_Unlimited(t *testing.T) {
	cfg, err := config.Parse([]byte("unlimited: true\ntime-limit: 0\n"))
	require.NoError(t, err, "a zero limit is fine once the budget is off")
	assert.True(t, cfg.Unlimited)

	start := time.Unix(0, 0)
	clock := func() time.Time { return start.Add(1000 * time.Hour) }
	budget := cfg.Budget(start, deadline.WithClock(clock))
	assert.False(t, budget.Bounded())
	assert.False(t, budget.Exceeded())

	cfg = config.Default()
	budget = cfg.Budget(start, deadline.WithClock(clock))
	assert.True(t, budget.Bounded())
	assert.Equal(t, config.DefaultTimeLimit, budget.Limit())
	assert.True(t, budget.Exceeded())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("time-limit: 2s\nexhaustive-below: 10\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.TimeLimit)
	assert.Equal(t, tsp.Options{SampleStarts: tsp.DefaultSampleStarts, ExhaustiveBelow: 10}, cfg.Options())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLevels(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		cfg := config.Default()
		cfg.LogLevel = name
		got, err := cfg.Level()
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}
