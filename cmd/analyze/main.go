package main

import (
	"context"
	"fmt"
	"os"

	"tradelab.com/internal/drills"
	"tradelab.com/pkg/bootstrap"
)

const largeThreshold = 100

func main() {
	os.Exit(bootstrap.Run("analyze", func(ctx context.Context, _ *bootstrap.Config) error {
		drills.ReportLarge(os.Stdout, []int{50, 150, 25, 200, 75}, largeThreshold)
		fmt.Println("Hello")
		return nil
	}))
}
