package main

import (
	"context"
	"os"

	"tradelab.com/internal/orders"
	"tradelab.com/pkg/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run("orders", func(ctx context.Context, _ *bootstrap.Config) error {
		sys := orders.NewSystem()
		if err := orders.Populate(sys); err != nil {
			return err
		}
		for _, id := range []int{1, 2, 3} {
			o, err := sys.GetByID(id)
			if err != nil {
				return err
			}
			if err := sys.Execute(os.Stdout, o); err != nil {
				return err
			}
		}
		return nil
	}))
}
