package service

import (
	"context"
	"errors"
	"time"

	"barplexity-be/internal/dto"
	"barplexity-be/internal/entity"
	"barplexity-be/internal/pkg/logger"
	"barplexity-be/internal/repository/memory"
	"barplexity-be/internal/repository/specification"
	"barplexity-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type IAuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthUserResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error)
	Logout(ctx context.Context, token string, expiresAt time.Time) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	revoked    *memory.RevokedTokenStore
	jwtSecret  []byte
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, revoked *memory.RevokedTokenStore, jwtSecret string, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		revoked:    revoked,
		jwtSecret:  []byte(jwtSecret),
		log:        log,
	}
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banned, err := uow.BannedEmailRepository().Exists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, ErrEmailBanned
	}

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         entity.UserRoleUser,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("auth", "user registered", map[string]interface{}{"email": user.Email})

	return &dto.AuthUserResponse{
		Id:       user.Id,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
	}, nil
}

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Ban outranks block. A banned account must never see the blocked
	// message even when both flags are set. The durable blocklist counts
	// as banned too, in case a row survives with the flag unset.
	if user.Banned {
		return nil, ErrAccountBanned
	}
	listed, err := uow.BannedEmailRepository().Exists(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if listed {
		return nil, ErrAccountBanned
	}
	if user.Blocked {
		return nil, ErrAccountBlocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "user signed in", map[string]interface{}{"email": user.Email, "role": user.Role})

	return &dto.SignInResponse{
		Token: token,
		User: dto.AuthUserResponse{
			Id:       user.Id,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     string(user.Role),
		},
	}, nil
}

func (s *authService) Logout(_ context.Context, token string, expiresAt time.Time) error {
	s.revoked.Revoke(token, expiresAt)
	return nil
}

func (s *authService) generateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(tokenLifetime).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.jwtSecret)
}
