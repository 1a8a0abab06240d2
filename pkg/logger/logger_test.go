package logger

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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogger_Info_WithTraceID(t *testing.T) {
	// 劫持日志输出到内存 Buffer
	buffer := &bytes.Buffer{}
	l, _, err := New(Options{Level: "info", Console: buffer, CallerSkip: 1})
	require.NoError(t, err)
	Log = l

	traceVal := "test-trace-12345"
	ctx := WithTrace(context.Background(), traceVal)

	Info(ctx, "market data logged", zap.String("symbol", "AAPL"), zap.Float64("price", 150.75))

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &logEntry), "日志输出必须是合法的 JSON")

	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "market data logged", logEntry["msg"])
	assert.Equal(t, "AAPL", logEntry["symbol"])
	assert.Equal(t, 150.75, logEntry["price"])
	assert.Equal(t, traceVal, logEntry["trace_id"], "TraceID 未能自动注入到日志中")
	// 行号必须指向调用方，而不是 logger.go 里的封装函数
	assert.Contains(t, logEntry["caller"], "logger/logger_test.go:")
}

func TestLogger_Error_NoTraceID(t *testing.T) {
	buffer := &bytes.Buffer{}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buffer),
		zap.InfoLevel,
	)
	Log = zap.New(core)

	Error(context.Background(), "csv open failed", zap.String("file", "orders.csv"))

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &logEntry))

	_, exists := logEntry["trace_id"]
	assert.False(t, exists, "没有 TraceID 的 Context 不应该输出 trace_id 字段")
	assert.Equal(t, "error", logEntry["level"])
}

func TestLogger_NewWritesFileAndConsole(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "nested", "drills.log")
	console := &bytes.Buffer{}

	l, lvl, err := New(Options{Name: "drills", Level: "warn", File: file, Console: console})
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept")
	lvl.SetLevel(zap.DebugLevel)
	l.Debug("now visible")
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"kept"`)
	assert.Contains(t, lines[0], `"service":"drills"`)
	assert.Contains(t, lines[1], `"msg":"now visible"`)
	assert.Equal(t, string(raw), console.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zap.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zap.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, zap.InfoLevel, ParseLevel(""))
}

func TestTraceID_NilContext(t *testing.T) {
	assert.Equal(t, "", TraceID(nil))
	ctx := WithTrace(nil, "abc")
	assert.Equal(t, "abc", TraceID(ctx))
}

func TestLogger_CallerSkip(t *testing.T) {
	buffer := &bytes.Buffer{}
	l, _, err := New(Options{Level: "debug", Console: buffer, CallerSkip: 1})
	require.NoError(t, err)
	Log = l

	Debug(context.Background(), "debug line")
	Warn(context.Background(), "warn line")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var e map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		caller, _ := e["caller"].(string)
		assert.True(t, strings.HasPrefix(caller, "logger/logger_test.go:"), "caller=%s", caller)
	}

	// 直接使用返回的 logger 时不跳帧
	buffer.Reset()
	direct, _, err := New(Options{Level: "info", Console: buffer})
	require.NoError(t, err)
	direct.Info("direct")
	assert.Contains(t, buffer.String(), `"caller":"logger/logger_test.go:`)
}
