package main

import (
	"context"
	"fmt"
	"os"

	"tradelab.com/internal/drills"
	"tradelab.com/pkg/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run("sumdebug", func(ctx context.Context, _ *bootstrap.Config) error {
		data := []int{1, 2, 3, 4, 5}
		fmt.Printf("Calculating sum of: %s\n", drills.FormatInts(data))
		fmt.Printf("Sum: %d\n", drills.Sum(os.Stdout, data))
		return nil
	}))
}
