package bootstrap

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"tradelab.com/pkg/common"
	"tradelab.com/pkg/config"
	"tradelab.com/pkg/logger"
	"tradelab.com/pkg/metrics"
	"tradelab.com/pkg/xerr"
)

// ConfigName 所有练习共用 config/drills.yaml，环境变量前缀 DRILLS_
const ConfigName = "drills"

type Config struct {
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Seed       uint64           `yaml:"seed" mapstructure:"seed"` // 0 表示按时间取种子
	Session    string           `yaml:"session" mapstructure:"session"`
	MarketData MarketDataConfig `yaml:"marketdata" mapstructure:"marketdata"`
	MarketLog  MarketLogConfig  `yaml:"marketlog" mapstructure:"marketlog"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

type MarketDataConfig struct {
	Symbol string `yaml:"symbol" mapstructure:"symbol"`
	Count  int    `yaml:"count" mapstructure:"count"`
	BaseTs int64  `yaml:"base_ts" mapstructure:"base_ts"`
}

type MarketLogConfig struct {
	Base  string `yaml:"base" mapstructure:"base"`
	Level string `yaml:"level" mapstructure:"level"`
}

func Defaults() map[string]any {
	return map[string]any{
		"log.level":          "warn",
		"log.file":           "",
		"seed":               0,
		"session":            "",
		"marketdata.symbol":  "AAPL",
		"marketdata.count":   10,
		"marketdata.base_ts": 1713859200,
		"marketlog.base":     "market_data",
		"marketlog.level":    "debug",
	}
}

// Rand 固定种子时结果可复现
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Run 加载配置、初始化日志和指标，然后执行 fn
// fn 返回的错误打印为 "Error: <msg>"，返回进程退出码
func Run(name string, fn func(ctx context.Context, cfg *Config) error) int {
	return run(name, os.Stderr, fn)
}

func run(name string, stderr io.Writer, fn func(ctx context.Context, cfg *Config) error) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &Config{}
	v, err := config.Load(ConfigName, Defaults(), cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: load config: %v\n", err)
		return 1
	}

	// 日志走 stderr，stdout 只留给练习本身的输出
	var sinks []io.Writer
	if cfg.Log.File != "" {
		f, err := logger.OpenAppend(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(stderr, "Error: open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		sinks = append(sinks, f)
	}
	l, lvl, _ := logger.New(logger.Options{Name: name, Level: cfg.Log.Level, Console: stderr, Sinks: sinks, CallerSkip: 1})
	logger.Log = l
	defer logger.Sync()

	config.Watch(v, ConfigName, cfg, func() {
		lvl.SetLevel(logger.ParseLevel(cfg.Log.Level))
	})
	metrics.MustRegister()

	ctx, session := common.SessionContext(ctx, cfg.Session)
	logger.Debug(ctx, "drill started", zap.String("drill", name), zap.String("session", session))

	err = fn(ctx, cfg)
	logCounters(ctx)
	if err != nil {
		logger.Warn(ctx, "drill failed", zap.String("drill", name), zap.Int("code", xerr.Code(err)), zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug(ctx, "drill finished", zap.String("drill", name))
	return 0
}

// logCounters 进程退出前把非零计数器打到 debug 日志
func logCounters(ctx context.Context) {
	samples, err := metrics.Snapshot(prometheus.DefaultGatherer)
	if err != nil {
		logger.Warn(ctx, "gather metrics failed", zap.Error(err))
		return
	}
	for _, s := range samples {
		logger.Debug(ctx, "counter", zap.String("metric", s.Key), zap.Float64("value", s.Value))
	}
}
