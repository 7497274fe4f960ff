package contract

import (
	"context"

	"barplexity-be/internal/entity"
	"barplexity-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Flag mutations
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	SetBanned(ctx context.Context, id uuid.UUID, banned bool) error
}
