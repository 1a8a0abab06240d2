package main

import (
	"context"
	"fmt"
	"os"

	"tradelab.com/internal/drills"
	"tradelab.com/pkg/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run("sortdemo", func(ctx context.Context, _ *bootstrap.Config) error {
		fmt.Println(drills.FormatInts(drills.SortedCopy([]int{3, 1, 4, 1, 5, 9, 2, 6})))
		return nil
	}))
}
