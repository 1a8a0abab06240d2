package main

import (
	"context"
	"os"

	"go.uber.org/zap"
	"tradelab.com/internal/drills"
	"tradelab.com/pkg/bootstrap"
	"tradelab.com/pkg/logger"
)

func main() {
	os.Exit(bootstrap.Run("hello", func(ctx context.Context, _ *bootstrap.Config) error {
		name, err := drills.Greet(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		logger.Debug(ctx, "greeted", zap.String("name", name))
		return nil
	}))
}
