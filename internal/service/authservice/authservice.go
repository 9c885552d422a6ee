package authservice

import (
	"context"
	"errors"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/pkg/auth"

	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Count(ctx context.Context) (int, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Defaults for the administrative account seeded on an empty user table.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@lavisco.com"
	defaultAdminFullName = "System Administrator"
)

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Info("unknown username", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("wrong password", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureAdmin seeds the default administrative account when the user table is
// empty. Running it on a populated table is a no-op.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hashService.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}
	_, err = s.userRepo.Create(ctx, &domain.User{
		Username:     defaultAdminUsername,
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		FullName:     defaultAdminFullName,
	})
	if err != nil {
		zap.L().Error("can't seed admin user: ", zap.Error(err))
		return err
	}
	zap.L().Info("seeded default admin user", zap.String("username", defaultAdminUsername))
	return nil
}

var ErrWrongPassword = errors.New("current password is incorrect")

func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, currentPassword); !ok {
		return ErrWrongPassword
	}
	hash, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	zap.L().Info("password changed", zap.Int("user_id", userID))
	return nil
}
