package common

import (
	"context"

	"github.com/google/uuid"
	"tradelab.com/pkg/logger"
)

func New() string { return uuid.NewString() }

// SessionContext 为一次运行生成 context，日志里的 trace_id 都取自这里
// id 为空时生成新的 uuid
func SessionContext(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = New()
	}
	return logger.WithTrace(ctx, id), id
}
