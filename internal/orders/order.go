package orders

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"tradelab.com/pkg/metrics"
	"tradelab.com/pkg/validate"
)

func init() {
	validate.Register("ordertype", func(fl validator.FieldLevel) bool {
		return OrderType(fl.Field().Uint()).Valid()
	})
}

// 多个字段同时不合法时，按 类型 -> 价格 -> 数量 -> 代码 的顺序报告
var orderRules = validate.Rules{
	Priority: []string{"Type", "Price", "Quantity", "Symbol"},
	Messages: map[string]string{
		"Type":     "Invalid order type",
		"Price":    "Price must be positive",
		"Quantity": fmt.Sprintf("Quantity must be between %d and %d", MinQuantity, MaxQuantity),
		"Symbol":   fmt.Sprintf("Symbol must be %d chars max", MaxSymbolLen),
	},
}

// NewOrder 构造并校验订单
func NewOrder(id int, symbol string, qty int, price decimal.Decimal, t OrderType) (Order, error) {
	o := Order{ID: id, Symbol: symbol, Quantity: qty, Price: price, Type: t}
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (o Order) Validate() error {
	field, err := validate.Check(o, orderRules)
	if err != nil {
		metrics.OrderRejectTotal.WithLabelValues(field).Inc()
	}
	return err
}
