package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"tradelab.com/internal/pricing"
	"tradelab.com/pkg/bootstrap"
)

// depthLevels 每一侧打印的档位数
const depthLevels = 5

func main() {
	os.Exit(bootstrap.Run("pricecalc", func(ctx context.Context, cfg *bootstrap.Config) error {
		return run(os.Stdout, cfg)
	}))
}

func run(w io.Writer, cfg *bootstrap.Config) error {
	book := pricing.NewBook()
	book.GenerateInitial(cfg.Rand())

	if err := pricing.Demo(w); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== VWAP CALCULATION COMPARISON ===")
	bids := pricing.SampleBids()
	fmt.Fprintf(w, "VWAP using range loop: %s\n", pricing.VWAP(bids).StringFixed(2))
	fmt.Fprintf(w, "VWAP using index walk: %s\n", pricing.VWAPIndexed(bids).StringFixed(2))

	spread, err := book.Spread()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Generated book bid VWAP: %s, ask VWAP: %s, spread: %s\n",
		pricing.VWAP(book.Bids()).StringFixed(2), pricing.VWAP(book.Asks()).StringFixed(2), spread.StringFixed(2))

	printDepth(w, book, depthLevels)
	return nil
}

// printDepth 卖盘由远到近，买盘由近到远，中间就是盘口
func printDepth(w io.Writer, book *pricing.Book, n int) {
	asks := book.Depth(pricing.Ask)
	bids := book.Depth(pricing.Bid)
	asks = asks[:min(n, len(asks))]
	bids = bids[:min(n, len(bids))]

	fmt.Fprintf(w, "\n=== TOP %d LEVELS ===\n", n)
	for i := len(asks) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "ASK %s x %d\n", asks[i].Price.StringFixed(2), asks[i].Volume)
	}
	for _, l := range bids {
		fmt.Fprintf(w, "BID %s x %d\n", l.Price.StringFixed(2), l.Volume)
	}
}
