package implementation

import (
	"context"

	"barplexity-be/internal/entity"
	"barplexity-be/internal/mapper"
	"barplexity-be/internal/model"
	"barplexity-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BannedEmailRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewBannedEmailRepository(db *gorm.DB) contract.BannedEmailRepository {
	return &BannedEmailRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *BannedEmailRepositoryImpl) Create(ctx context.Context, banned *entity.BannedEmail) error {
	m := r.mapper.BannedEmailToModel(banned)
	// Banning the same email twice is a no-op, not a constraint violation.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(m).Error
}

func (r *BannedEmailRepositoryImpl) Exists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BannedEmail{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
