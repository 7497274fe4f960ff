package contract

import (
	"context"

	"barplexity-be/internal/entity"
)

type BannedEmailRepository interface {
	Create(ctx context.Context, banned *entity.BannedEmail) error
	Exists(ctx context.Context, email string) (bool, error)
}
