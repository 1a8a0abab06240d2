package marketdata

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"
	"tradelab.com/pkg/validate"
	"tradelab.com/pkg/xerr"
)

const (
	MaxSymbolLen = 8 // 字节数，与 Symbol 的 maxbytes tag 一致
	// DefaultBaseTs 示例数据的起始时间戳 (秒)
	DefaultBaseTs int64 = 1713859200
)

// MarketData 一条行情：代码 / 价格 / 成交量 / 时间戳(秒)
type MarketData struct {
	Symbol    string          `validate:"required,maxbytes=8"`
	Price     decimal.Decimal `validate:"gte=0"`
	Volume    int             `validate:"gte=0"`
	Timestamp int64
}

var rules = validate.Rules{
	Priority: []string{"Symbol", "Price", "Volume"},
	Messages: map[string]string{
		"Symbol": fmt.Sprintf("Symbol must be 1-%d chars", MaxSymbolLen),
		"Price":  "Price must not be negative",
		"Volume": "Volume must not be negative",
	},
}

func (d MarketData) Validate() error {
	_, err := validate.Check(d, rules)
	return err
}

func (d MarketData) String() string {
	return fmt.Sprintf("Symbol: %s, Price: %s, Volume: %d, Timestamp: %d",
		d.Symbol, d.Price.String(), d.Volume, d.Timestamp)
}

// Manager 按插入顺序保存行情
type Manager struct {
	rows []MarketData
}

func NewManager() *Manager {
	return &Manager{rows: make([]MarketData, 0, 16)}
}

func (m *Manager) Add(d MarketData) error {
	if err := d.Validate(); err != nil {
		return err
	}
	m.rows = append(m.rows, d)
	return nil
}

func (m *Manager) Len() int { return len(m.rows) }

// All 返回副本
func (m *Manager) All() []MarketData { return slices.Clone(m.rows) }

func (m *Manager) Print(w io.Writer) error {
	for _, d := range m.rows {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

// HighestVolume 空集合返回 0
func (m *Manager) HighestVolume() int {
	highest := 0
	for _, d := range m.rows {
		if d.Volume > highest {
			highest = d.Volume
		}
	}
	return highest
}

func (m *Manager) AveragePrice() (decimal.Decimal, error) {
	if len(m.rows) == 0 {
		return decimal.Zero, xerr.New(xerr.InvalidArgument, "no market data to average")
	}
	total := decimal.Zero
	for _, d := range m.rows {
		total = total.Add(d.Price)
	}
	return total.Div(decimal.NewFromInt(int64(len(m.rows)))), nil
}

// Populate 生成 n 条随机行情：price/volume ∈ [0,1000)，时间戳 baseTs+i
func Populate(m *Manager, rng *rand.Rand, symbol string, n int, baseTs int64) error {
	for i := 0; i < n; i++ {
		d := MarketData{
			Symbol:    symbol,
			Price:     decimal.NewFromInt(int64(rng.IntN(1000))),
			Volume:    rng.IntN(1000),
			Timestamp: baseTs + int64(i),
		}
		if err := m.Add(d); err != nil {
			return err
		}
	}
	return nil
}
