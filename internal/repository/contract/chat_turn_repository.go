package contract

import (
	"context"

	"barplexity-be/internal/entity"
	"barplexity-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatTurnRepository interface {
	Create(ctx context.Context, turn *entity.ChatTurn) error
	DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error
	DeleteAllBySessionIds(ctx context.Context, sessionIds []uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
