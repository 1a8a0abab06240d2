package marketlog

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"tradelab.com/pkg/logger"
	"tradelab.com/pkg/metrics"
	"tradelab.com/pkg/xerr"
)

const (
	marketDataSuffix = "_market_data.csv"
	ordersSuffix     = "_orders.csv"
	logSuffix        = ".log"
)

// Options MarketLogger 的构建参数
type Options struct {
	Base    string // 文件前缀：<Base>.log / <Base>_market_data.csv / <Base>_orders.csv
	Level   string
	Console io.Writer
	Clock   func() time.Time
}

// MarketLogger 同时写控制台和 <Base>.log，并把行情/订单追加到 CSV
type MarketLogger struct {
	log   *zap.Logger
	level zap.AtomicLevel
	file  *os.File
	base  string
	now   func() time.Time
}

func New(ctx context.Context, opt Options) (*MarketLogger, error) {
	if opt.Base == "" {
		return nil, xerr.New(xerr.InvalidArgument, "log base path is empty")
	}
	f, err := logger.OpenAppend(opt.Base + logSuffix)
	if err != nil {
		return nil, xerr.Wrap(err, xerr.IOError, "open log file")
	}
	l, lvl, _ := logger.New(logger.Options{
		Name:    "market_logger",
		Level:   opt.Level,
		Console: opt.Console,
		Sinks:   []io.Writer{f},
	})

	now := opt.Clock
	if now == nil {
		now = time.Now
	}
	m := &MarketLogger{log: l, level: lvl, file: f, base: opt.Base, now: now}
	m.log.Info("MarketLogger initialized", logger.Fields(ctx, []zap.Field{zap.String("log_file", f.Name())})...)
	return m, nil
}

func (m *MarketLogger) MarketDataFile() string { return m.base + marketDataSuffix }
func (m *MarketLogger) OrdersFile() string     { return m.base + ordersSuffix }
func (m *MarketLogger) LogFile() string        { return m.base + logSuffix }

// LogMarketData 记录一条行情并追加 ts,price,volume,symbol
func (m *MarketLogger) LogMarketData(ctx context.Context, symbol string, price decimal.Decimal, volume int, ts int64) error {
	m.log.Info("Market Data", logger.Fields(ctx, []zap.Field{
		zap.String("symbol", symbol),
		zap.String("price", price.StringFixed(2)),
		zap.Int("volume", volume),
		zap.Int64("timestamp", ts),
	})...)
	row := []string{strconv.FormatInt(ts, 10), price.String(), strconv.Itoa(volume), symbol}
	if err := m.appendCSV(ctx, m.MarketDataFile(), "market_data", row); err != nil {
		return err
	}
	metrics.MarketDataLoggedTotal.WithLabelValues(symbol).Inc()
	return nil
}

// SideString B 为 BUY，其余都按 SELL
func SideString(side byte) string {
	if side == 'B' {
		return "BUY"
	}
	return "SELL"
}

// LogOrder 记录订单并追加 id,symbol,qty,price,side
func (m *MarketLogger) LogOrder(ctx context.Context, id int, symbol string, qty int, price decimal.Decimal, side byte) error {
	m.log.Info("Order", logger.Fields(ctx, []zap.Field{
		zap.Int("id", id),
		zap.String("symbol", symbol),
		zap.String("type", SideString(side)),
		zap.Int("quantity", qty),
		zap.String("price", price.StringFixed(2)),
	})...)
	row := []string{strconv.Itoa(id), symbol, strconv.Itoa(qty), price.String(), string(rune(side))}
	return m.appendCSV(ctx, m.OrdersFile(), "orders", row)
}

func (m *MarketLogger) LogDescription(ctx context.Context, description string) {
	m.log.Info("Description: "+description, logger.Fields(ctx, nil)...)
}

func (m *MarketLogger) Warn(ctx context.Context, msg string) {
	m.log.Warn("Warning: "+msg, logger.Fields(ctx, nil)...)
}

func (m *MarketLogger) Error(ctx context.Context, msg string) {
	m.log.Error("Error: "+msg, logger.Fields(ctx, nil)...)
}

func (m *MarketLogger) Debug(ctx context.Context, msg string) {
	m.log.Debug("Debug: "+msg, logger.Fields(ctx, nil)...)
}

// ReadEntries 读取文件所有行
func (m *MarketLogger) ReadEntries(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		m.log.Error("failed to open file", logger.Fields(ctx, []zap.Field{zap.String("file", path), zap.Error(err)})...)
		return nil, xerr.Wrap(err, xerr.IOError, "open "+path)
	}
	defer f.Close()

	var entries []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		entries = append(entries, sc.Text())
	}
	if err := sc.Err(); err != nil {
		m.log.Error("failed to read file", logger.Fields(ctx, []zap.Field{zap.String("file", path), zap.Error(err)})...)
		return entries, xerr.Wrap(err, xerr.IOError, "read "+path)
	}
	m.log.Info("read log entries", logger.Fields(ctx, []zap.Field{zap.Int("count", len(entries)), zap.String("file", path)})...)
	return entries, nil
}

// Now 毫秒时间戳
func (m *MarketLogger) Now() int64 { return m.now().UnixMilli() }

func (m *MarketLogger) SetLevel(ctx context.Context, level string) error {
	if err := m.level.UnmarshalText([]byte(level)); err != nil {
		return xerr.Wrap(err, xerr.InvalidArgument, "invalid log level "+strconv.Quote(level))
	}
	m.log.Info("log level set", logger.Fields(ctx, []zap.Field{zap.String("level", m.level.String())})...)
	return nil
}

func (m *MarketLogger) Level() string { return m.level.String() }

// Flush zap 对 stdout 调用 Sync 可能返回 EINVAL/ENOTTY，这里只关心文件
func (m *MarketLogger) Flush() error {
	_ = m.log.Sync()
	return m.file.Sync()
}

func (m *MarketLogger) Close() error {
	return errors.Join(m.Flush(), m.file.Close())
}

// appendCSV 每次打开、追加、关闭，失败时记录 error 日志
func (m *MarketLogger) appendCSV(ctx context.Context, path, label string, row []string) (err error) {
	defer func() {
		if err != nil {
			metrics.CSVWriteErrorsTotal.WithLabelValues(label).Inc()
			m.log.Error("failed to append csv", logger.Fields(ctx, []zap.Field{zap.String("file", path), zap.Error(err)})...)
		}
	}()

	f, err := logger.OpenAppend(path)
	if err != nil {
		return xerr.Wrap(err, xerr.IOError, "open "+label+" csv")
	}
	w := csv.NewWriter(f)
	if err = w.Write(row); err == nil {
		w.Flush()
		err = w.Error()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return xerr.Wrap(err, xerr.IOError, "write "+label+" csv")
	}
	return nil
}
