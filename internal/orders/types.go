package orders

import "github.com/shopspring/decimal"

// OrderType 订单类型，取值与单字符代码一致
type OrderType byte

const (
	Market OrderType = 'M'
	Limit  OrderType = 'L'
	Stop   OrderType = 'S'
)

// 与 Order 上的 validate tag 保持一致，错误文案由这里生成
const (
	MinQuantity  = 1
	MaxQuantity  = 100000
	MaxSymbolLen = 8 // 字节数
)

func (t OrderType) Valid() bool {
	switch t {
	case Market, Limit, Stop:
		return true
	default:
		return false
	}
}

func (t OrderType) String() string {
	switch t {
	case Market:
		return "Market"
	case Limit:
		return "Limit"
	case Stop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// Order 订单
type Order struct {
	ID       int
	Symbol   string          `validate:"maxbytes=8"`
	Quantity int             `validate:"min=1,max=100000"`
	Price    decimal.Decimal `validate:"gt=0"`
	Type     OrderType       `validate:"ordertype"`
}
