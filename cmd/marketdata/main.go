package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"tradelab.com/internal/marketdata"
	"tradelab.com/pkg/bootstrap"
	"tradelab.com/pkg/logger"
)

func main() {
	os.Exit(bootstrap.Run("marketdata", func(ctx context.Context, cfg *bootstrap.Config) error {
		m := marketdata.NewManager()
		mc := cfg.MarketData
		if err := marketdata.Populate(m, cfg.Rand(), mc.Symbol, mc.Count, mc.BaseTs); err != nil {
			return err
		}
		logger.Debug(ctx, "market data populated", zap.Int("rows", m.Len()))

		if err := m.Print(os.Stdout); err != nil {
			return err
		}
		fmt.Printf("Highest Volume: %d\n", m.HighestVolume())

		avg, err := m.AveragePrice()
		if err != nil {
			return err
		}
		fmt.Printf("Average Price: %s\n", avg.String())

		bars, err := m.Summary(time.Minute)
		if err != nil {
			return err
		}
		for _, b := range bars {
			fmt.Println(b.String())
		}
		return nil
	}))
}
