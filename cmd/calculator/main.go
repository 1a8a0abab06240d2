package main

import (
	"context"
	"fmt"
	"os"

	"tradelab.com/internal/calculator"
	"tradelab.com/pkg/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run("calculator", func(ctx context.Context, _ *bootstrap.Config) error {
		c := calculator.New()
		fmt.Println(c.Add(1, 2))
		fmt.Println(c.Subtract(1, 2))
		fmt.Println(c.Multiply(1, 2))

		// 除零错误在这里就地处理，不影响退出码
		if q, err := c.Divide(1, 0); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Println(q)
		}
		return nil
	}))
}
