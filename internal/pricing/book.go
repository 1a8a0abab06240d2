package pricing

import (
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"
	"tradelab.com/pkg/xerr"
)

// Level 一个价位及其挂单量
type Level struct {
	Price  decimal.Decimal
	Volume int
}

type Side uint8

const (
	Bid Side = iota + 1
	Ask
)

const initialLevels = 100

var (
	initialBidBase = decimal.NewFromInt(100)
	initialAskBase = decimal.NewFromInt(102)
	tick           = decimal.New(1, -2) // 0.01
)

// Book 买卖两侧的价位，按加入顺序保存
type Book struct {
	bids []Level
	asks []Level
}

func NewBook() *Book {
	return &Book{
		bids: make([]Level, 0, initialLevels),
		asks: make([]Level, 0, initialLevels),
	}
}

// GenerateInitial 生成 100 档买价 100.00 + i*0.01 和 100 档卖价 102.00 - i*0.01
// 挂单量 ∈ [100, 1000)
func (b *Book) GenerateInitial(rng *rand.Rand) {
	for i := 0; i < initialLevels; i++ {
		step := tick.Mul(decimal.NewFromInt(int64(i)))
		b.AddBid(initialBidBase.Add(step), rng.IntN(900)+100)
	}
	for i := 0; i < initialLevels; i++ {
		step := tick.Mul(decimal.NewFromInt(int64(i)))
		b.AddAsk(initialAskBase.Sub(step), rng.IntN(900)+100)
	}
}

func (b *Book) AddBid(price decimal.Decimal, volume int) {
	b.bids = append(b.bids, Level{Price: price, Volume: volume})
}

func (b *Book) AddAsk(price decimal.Decimal, volume int) {
	b.asks = append(b.asks, Level{Price: price, Volume: volume})
}

func (b *Book) Bids() []Level { return slices.Clone(b.bids) }
func (b *Book) Asks() []Level { return slices.Clone(b.asks) }

// BestBid 最高买价，同价取最早加入的
func (b *Book) BestBid() (Level, bool) {
	if len(b.bids) == 0 {
		return Level{}, false
	}
	best := b.bids[0]
	for _, l := range b.bids[1:] {
		if l.Price.GreaterThan(best.Price) {
			best = l
		}
	}
	return best, true
}

// BestAsk 最低卖价，同价取最早加入的
func (b *Book) BestAsk() (Level, bool) {
	if len(b.asks) == 0 {
		return Level{}, false
	}
	best := b.asks[0]
	for _, l := range b.asks[1:] {
		if l.Price.LessThan(best.Price) {
			best = l
		}
	}
	return best, true
}

// Spread 最优卖价 - 最优买价，可能为负(交叉盘)
func (b *Book) Spread() (decimal.Decimal, error) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return decimal.Zero, xerr.New(xerr.InvalidArgument, "spread needs both bids and asks")
	}
	return ask.Price.Sub(bid.Price), nil
}

// Depth 按价格优先排序后的副本：买盘从高到低，卖盘从低到高，同价保持加入顺序
func (b *Book) Depth(side Side) []Level {
	src := b.asks
	if side == Bid {
		src = b.bids
	}
	out := make([]Level, 0, len(src))
	for _, l := range src {
		out = insertLevel(out, l, side)
	}
	return out
}

// insertLevel 二分查找插入位置，同价插到已有价位之后(FIFO)
func insertLevel(levels []Level, l Level, side Side) []Level {
	lo, hi := 0, len(levels)
	for lo < hi {
		mid := (lo + hi) >> 1
		c := levels[mid].Price.Cmp(l.Price)
		if side == Bid {
			c = -c
		}
		if c <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	levels = append(levels, Level{})
	copy(levels[lo+1:], levels[lo:])
	levels[lo] = l
	return levels
}
