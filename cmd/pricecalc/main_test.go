package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tradelab.com/internal/pricing"
	"tradelab.com/pkg/bootstrap"
)

func TestPrintDepth(t *testing.T) {
	book := pricing.NewBook()
	book.AddBid(decimal.RequireFromString("99.50"), 10)
	book.AddBid(decimal.RequireFromString("100"), 20)
	book.AddBid(decimal.RequireFromString("99.75"), 30)
	book.AddAsk(decimal.RequireFromString("101"), 5)
	book.AddAsk(decimal.RequireFromString("100.5"), 6)

	var out bytes.Buffer
	printDepth(&out, book, 2)
	assert.Equal(t, "\n=== TOP 2 LEVELS ===\n"+
		"ASK 101.00 x 5\n"+
		"ASK 100.50 x 6\n"+
		"BID 100.00 x 20\n"+
		"BID 99.75 x 30\n", out.String())
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, &bootstrap.Config{Seed: 3}))

	s := out.String()
	assert.Contains(t, s, "VWAP using range loop: 102.46\n")
	assert.Contains(t, s, "VWAP using index walk: 102.46\n")
	assert.Contains(t, s, "spread: 0.02\n")

	// 生成的盘口：买一 100.99，卖一 101.01
	_, depth, ok := strings.Cut(s, "=== TOP 5 LEVELS ===\n")
	require.True(t, ok)
	lines := strings.Split(strings.TrimSpace(depth), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "ASK 101.05 x "))
	assert.True(t, strings.HasPrefix(lines[4], "ASK 101.01 x "))
	assert.True(t, strings.HasPrefix(lines[5], "BID 100.99 x "))
	assert.True(t, strings.HasPrefix(lines[9], "BID 100.95 x "))
}
