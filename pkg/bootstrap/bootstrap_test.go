package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tradelab.com/pkg/logger"
	"tradelab.com/pkg/metrics"
	"tradelab.com/pkg/xerr"
)

func TestRun_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	var got *Config
	var trace string
	var stderr bytes.Buffer
	code := run("test", &stderr, func(ctx context.Context, cfg *Config) error {
		got = cfg
		trace = logger.TraceID(ctx)
		return nil
	})
	assert.Equal(t, 0, code)
	require.NotNil(t, got)
	assert.Equal(t, "AAPL", got.MarketData.Symbol)
	assert.Equal(t, 10, got.MarketData.Count)
	assert.Equal(t, int64(1713859200), got.MarketData.BaseTs)
	assert.Equal(t, "market_data", got.MarketLog.Base)
	assert.NotEmpty(t, trace)
	assert.Empty(t, stderr.String(), "warn level hides debug lines")
}

func TestRun_ErrorPrinted(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DRILLS_SESSION", "fixed-session")
	t.Setenv("DRILLS_LOG_LEVEL", "error")

	var stderr bytes.Buffer
	code := run("test", &stderr, func(ctx context.Context, cfg *Config) error {
		assert.Equal(t, "fixed-session", logger.TraceID(ctx))
		return xerr.New(xerr.InvalidArgument, "Division by zero")
	})
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Division by zero\n", stderr.String())
}

func TestRun_ConfigFileAndLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := "log:\n  level: debug\n  file: logs/drills.log\nseed: 5\nmarketdata:\n  symbol: MSFT\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "drills.yaml"), []byte(yaml), 0o644))

	var stderr bytes.Buffer
	code := run("test", &stderr, func(ctx context.Context, cfg *Config) error {
		assert.Equal(t, "MSFT", cfg.MarketData.Symbol)
		assert.Equal(t, 10, cfg.MarketData.Count)
		assert.Equal(t, uint64(5), cfg.Seed)
		return nil
	})
	assert.Equal(t, 0, code)

	raw, err := os.ReadFile(filepath.Join(dir, "logs", "drills.log"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "drill started")
	assert.Contains(t, stderr.String(), "drill finished")
}

func TestConfig_Rand(t *testing.T) {
	a := (&Config{Seed: 9}).Rand()
	b := (&Config{Seed: 9}).Rand()
	assert.Equal(t, a.IntN(1000), b.IntN(1000))
	assert.NotNil(t, (&Config{}).Rand())
}

func TestRun_CallerIsBootstrap(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DRILLS_LOG_LEVEL", "debug")

	var stderr bytes.Buffer
	code := run("test", &stderr, func(ctx context.Context, cfg *Config) error { return nil })
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.NotEmpty(t, lines)
	var e map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &e))
	assert.Equal(t, "drill started", e["msg"])
	assert.True(t, strings.HasPrefix(e["caller"].(string), "bootstrap/bootstrap.go:"), "caller=%v", e["caller"])
}

func TestRun_LogsCounters(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DRILLS_LOG_LEVEL", "debug")

	var stderr bytes.Buffer
	code := run("test", &stderr, func(ctx context.Context, cfg *Config) error {
		metrics.OrdersExecutedTotal.WithLabelValues("Stop").Inc()
		return nil
	})
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), `"metric":"tradelab_orders_executed_total{type=Stop}"`)
}
