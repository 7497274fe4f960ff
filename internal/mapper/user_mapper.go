package mapper

import (
	"barplexity-be/internal/entity"
	"barplexity-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         entity.UserRole(u.Role),
		Blocked:      u.Blocked,
		Banned:       u.Banned,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         string(u.Role),
		Blocked:      u.Blocked,
		Banned:       u.Banned,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) BannedEmailToEntity(b *model.BannedEmail) *entity.BannedEmail {
	if b == nil {
		return nil
	}
	return &entity.BannedEmail{
		Id:        b.Id,
		Email:     b.Email,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

func (m *UserMapper) BannedEmailToModel(b *entity.BannedEmail) *model.BannedEmail {
	if b == nil {
		return nil
	}
	return &model.BannedEmail{
		Id:        b.Id,
		Email:     b.Email,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}
