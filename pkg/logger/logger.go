package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TraceIdKey 一次运行(session)的 trace id 在 Context 中的 Key
const TraceIdKey = "trace_id"

type ctxKey struct{}

// 全局 Logger 实例
var Log *zap.Logger = zap.NewNop()

// Options 构建 zap core 的参数
type Options struct {
	Name    string      // 程序名，作为全局字段 "service"
	Level   string      // debug, info, warn, error
	File    string      // 日志文件路径，空字符串表示不写文件
	Console io.Writer   // 控制台输出，nil 时使用 os.Stdout
	Sinks   []io.Writer // 额外的输出，由调用方负责关闭
	// CallerSkip 通过包装函数打日志时跳过的栈帧数
	// 全局 Log 经 Info/Warn/... 封装一层，必须是 1，否则行号永远指向 logger.go
	CallerSkip int
}

// New 构建一个独立的 logger，返回可动态调整的级别
// 文件打不开时只输出到控制台，并把错误返回给调用方
func New(opt Options) (*zap.Logger, zap.AtomicLevel, error) {
	lvl := zap.NewAtomicLevelAt(ParseLevel(opt.Level))

	console := opt.Console
	if console == nil {
		console = os.Stdout
	}
	syncers := []zapcore.WriteSyncer{zapcore.AddSync(console)}
	for _, w := range opt.Sinks {
		syncers = append(syncers, zapcore.AddSync(w))
	}

	var fileErr error
	if opt.File != "" {
		f, err := OpenAppend(opt.File)
		if err != nil {
			fileErr = err
		} else {
			syncers = append(syncers, zapcore.AddSync(f))
		}
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(EncoderConfig()),
		zapcore.NewMultiWriteSyncer(syncers...),
		lvl,
	)
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(opt.CallerSkip))
	if opt.Name != "" {
		l = l.With(zap.String("service", opt.Name))
	}
	return l, lvl, fileErr
}

// EncoderConfig JSON 编码配置: ISO8601 时间, INFO/ERROR 级别
func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.MessageKey = "msg"
	return cfg
}

// ParseLevel 非法级别回退到 info
func ParseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zap.InfoLevel
	}
	return l
}

// OpenAppend 以追加模式打开文件，必要时创建目录
func OpenAppend(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// WithTrace 把 trace id 放进 context
func WithTrace(ctx context.Context, traceID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, traceID)
}

// TraceID 从 context 中取出 trace id
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}

// Fields 返回追加了 trace_id 的字段列表
func Fields(ctx context.Context, fields []zap.Field) []zap.Field {
	if id := TraceID(ctx); id != "" {
		return append(fields, zap.String(TraceIdKey, id))
	}
	return fields
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Info(msg, Fields(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Error(msg, Fields(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Warn(msg, Fields(ctx, fields)...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Debug(msg, Fields(ctx, fields)...)
}

// Sync 刷新缓冲区 (main 函数 defer 中调用)
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
