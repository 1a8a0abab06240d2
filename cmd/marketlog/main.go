package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"
	"tradelab.com/internal/marketlog"
	"tradelab.com/pkg/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run("marketlog", run))
}

func run(ctx context.Context, cfg *bootstrap.Config) error {
	ml, err := marketlog.New(ctx, marketlog.Options{Base: cfg.MarketLog.Base, Level: "info"})
	if err != nil {
		return err
	}
	defer ml.Close()

	if err := ml.SetLevel(ctx, cfg.MarketLog.Level); err != nil {
		return err
	}

	if err := ml.LogMarketData(ctx, "AAPL", decimal.RequireFromString("150.75"), 1000, ml.Now()); err != nil {
		return err
	}
	if err := ml.LogOrder(ctx, 1001, "AAPL", 500, decimal.RequireFromString("150.50"), 'B'); err != nil {
		return err
	}
	if err := ml.LogOrder(ctx, 1002, "AAPL", 300, decimal.RequireFromString("151.00"), 'S'); err != nil {
		return err
	}

	ml.LogDescription(ctx, "Market session started")
	ml.Warn(ctx, "High volatility detected in tech sector")
	ml.Debug(ctx, "Processing market data updates")

	if _, err := ml.ReadEntries(ctx, ml.OrdersFile()); err != nil {
		return err
	}
	ml.LogDescription(ctx, "Market data processing completed successfully")
	return ml.Flush()
}
