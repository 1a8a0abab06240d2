package marketdata

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"tradelab.com/pkg/xerr"
)

// Bar 一个时间窗 [StartTs, EndTs) 内的 OHLCV
type Bar struct {
	Symbol  string
	StartTs int64
	EndTs   int64

	Open  decimal.Decimal
	High  decimal.Decimal
	Low   decimal.Decimal
	Close decimal.Decimal

	Volume int64
	Count  int64
}

func (b Bar) String() string {
	return fmt.Sprintf("%s [%d,%d) O=%s H=%s L=%s C=%s V=%d n=%d",
		b.Symbol, b.StartTs, b.EndTs,
		b.Open, b.High, b.Low, b.Close, b.Volume, b.Count)
}

// Summary 把行情按 symbol + 时间桶聚合成 K 线
// 同一个桶内按时间戳排序后计算 open/close，时间戳相同保持插入顺序
func (m *Manager) Summary(interval time.Duration) ([]Bar, error) {
	step := int64(interval / time.Second)
	if step <= 0 {
		return nil, xerr.New(xerr.InvalidArgument, "interval must be at least 1s")
	}

	rows := m.All()
	slices.SortStableFunc(rows, func(a, b MarketData) int {
		if c := cmp.Compare(a.Symbol, b.Symbol); c != 0 {
			return c
		}
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})

	bars := make([]Bar, 0, len(rows))
	var cur *Bar
	for _, d := range rows {
		bs := bucketStart(d.Timestamp, step)
		if cur == nil || cur.Symbol != d.Symbol || cur.StartTs != bs {
			bars = append(bars, Bar{
				Symbol:  d.Symbol,
				StartTs: bs,
				EndTs:   bs + step,
				Open:    d.Price,
				High:    d.Price,
				Low:     d.Price,
				Close:   d.Price,
				Volume:  int64(d.Volume),
				Count:   1,
			})
			cur = &bars[len(bars)-1]
			continue
		}
		if d.Price.GreaterThan(cur.High) {
			cur.High = d.Price
		}
		if d.Price.LessThan(cur.Low) {
			cur.Low = d.Price
		}
		cur.Close = d.Price
		cur.Volume += int64(d.Volume)
		cur.Count++
	}
	return bars, nil
}

// bucketStart 向下取整到 step 的整数倍，负数同样向下取整
func bucketStart(ts, step int64) int64 {
	q := ts / step
	if ts%step != 0 && ts < 0 {
		q--
	}
	return q * step
}
