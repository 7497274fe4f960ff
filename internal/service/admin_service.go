package service

import (
	"context"

	"barplexity-be/internal/dto"
	"barplexity-be/internal/entity"
	"barplexity-be/internal/pkg/logger"
	"barplexity-be/internal/repository/specification"
	"barplexity-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*dto.AdminUserResponse, error)
	ToggleBlock(ctx context.Context, userId uuid.UUID) (*dto.BlockUserResponse, error)
	BanUser(ctx context.Context, userId uuid.UUID) error
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	adminEmail string
	log        logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, adminEmail string, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		adminEmail: adminEmail,
		log:        log,
	}
}

// ListUsers returns regular accounts only; administrator rows are never
// listed and so never offered as moderation targets.
func (s *adminService) ListUsers(ctx context.Context, limit, offset int) ([]*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByRole{Role: string(entity.UserRoleUser)},
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, &dto.AdminUserResponse{
			Id:        u.Id,
			FullName:  u.FullName,
			Email:     u.Email,
			Role:      string(u.Role),
			Blocked:   u.Blocked,
			CreatedAt: u.CreatedAt,
		})
	}
	return responses, nil
}

func (s *adminService) ToggleBlock(ctx context.Context, userId uuid.UUID) (*dto.BlockUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findMutableUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	blocked := !user.Blocked
	if err := uow.UserRepository().SetBlocked(ctx, user.Id, blocked); err != nil {
		return nil, err
	}

	s.log.Info("admin", "user block toggled", map[string]interface{}{
		"user_id": user.Id,
		"blocked": blocked,
	})

	return &dto.BlockUserResponse{
		Id:      user.Id,
		Blocked: blocked,
	}, nil
}

// BanUser records the address on the blocklist, then purges the account and
// everything it owns inside one transaction.
func (s *adminService) BanUser(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findMutableUser(ctx, uow, userId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Mark the row banned before it goes away, so a partially applied
	// transaction still leaves the account unusable.
	if err := uow.UserRepository().SetBanned(ctx, user.Id, true); err != nil {
		return err
	}

	if err := uow.BannedEmailRepository().Create(ctx, &entity.BannedEmail{
		Email:  user.Email,
		Reason: "banned by administrator",
	}); err != nil {
		return err
	}

	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specification.UserOwnedBy{UserID: user.Id})
	if err != nil {
		return err
	}
	if len(sessions) > 0 {
		sessionIds := make([]uuid.UUID, 0, len(sessions))
		for _, sess := range sessions {
			sessionIds = append(sessionIds, sess.Id)
		}
		if err := uow.ChatTurnRepository().DeleteAllBySessionIds(ctx, sessionIds); err != nil {
			return err
		}
	}
	if err := uow.ChatSessionRepository().DeleteAllByUserId(ctx, user.Id); err != nil {
		return err
	}

	if err := uow.UserRepository().Delete(ctx, user.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Warn("admin", "user banned and purged", map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
	})
	return nil
}

// findMutableUser resolves the target and refuses the built-in administrator,
// so block and ban can never lock the admin out.
func (s *adminService) findMutableUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsAdmin() || user.Email == s.adminEmail {
		return nil, ErrAdminImmutable
	}
	return user, nil
}
