package orders

import (
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
	"tradelab.com/pkg/metrics"
	"tradelab.com/pkg/xerr"
)

// System 内存中的订单列表，保持插入顺序
type System struct {
	orders []Order
	byID   map[int]int // id -> index
}

func NewSystem() *System {
	return &System{
		orders: make([]Order, 0, 16),
		byID:   make(map[int]int, 16),
	}
}

// Add 重复 id 返回 InvalidArgument
func (s *System) Add(o Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if _, ok := s.byID[o.ID]; ok {
		return xerr.Newf(xerr.InvalidArgument, "Duplicate order id %d", o.ID)
	}
	s.byID[o.ID] = len(s.orders)
	s.orders = append(s.orders, o)
	return nil
}

func (s *System) GetByID(id int) (Order, error) {
	idx, ok := s.byID[id]
	if !ok {
		return Order{}, xerr.New(xerr.RecordNotFound, "Order not found")
	}
	return s.orders[idx], nil
}

// GetBySymbol 返回最早插入的同代码订单
func (s *System) GetBySymbol(symbol string) (Order, error) {
	for _, o := range s.orders {
		if o.Symbol == symbol {
			return o, nil
		}
	}
	return Order{}, xerr.New(xerr.RecordNotFound, "Order not found")
}

// Execute 打印订单明细
func (s *System) Execute(w io.Writer, o Order) error {
	if !o.Type.Valid() {
		_, err := fmt.Fprintln(w, "Invalid order type")
		if err != nil {
			return err
		}
		return xerr.New(xerr.InvalidArgument, "Invalid order type")
	}
	_, err := fmt.Fprintf(w, "Order ID: %d, Symbol: %s, Quantity: %d, Price: %s, Order Type: %s\n",
		o.ID, o.Symbol, o.Quantity, o.Price.String(), o.Type)
	if err != nil {
		return err
	}
	metrics.OrdersExecutedTotal.WithLabelValues(o.Type.String()).Inc()
	return nil
}

func (s *System) Len() int { return len(s.orders) }

func (s *System) All() []Order { return slices.Clone(s.orders) }

// Populate 三个示例订单
func Populate(s *System) error {
	seed := []struct {
		id     int
		symbol string
		qty    int
		price  int64
		t      OrderType
	}{
		{1, "AAPL", 100, 150, Market},
		{2, "GOOG", 200, 2500, Limit},
		{3, "MSFT", 300, 350, Stop},
	}
	for _, r := range seed {
		o, err := NewOrder(r.id, r.symbol, r.qty, decimal.NewFromInt(r.price), r.t)
		if err != nil {
			return err
		}
		if err := s.Add(o); err != nil {
			return err
		}
	}
	return nil
}
