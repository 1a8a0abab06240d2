package calculator

import "tradelab.com/pkg/xerr"

// Calculator 四则运算
type Calculator struct{}

func New() *Calculator { return &Calculator{} }

func (c *Calculator) Add(a, b int) int      { return a + b }
func (c *Calculator) Subtract(a, b int) int { return a - b }
func (c *Calculator) Multiply(a, b int) int { return a * b }

// Divide 除数为 0 时返回 InvalidArgument
func (c *Calculator) Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, xerr.New(xerr.InvalidArgument, "Division by zero")
	}
	return float64(a) / float64(b), nil
}
