package ministerservice

import (
	"context"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/pkg/validate"

	"go.uber.org/zap"
)

//go:generate mockgen -source=ministerservice.go -destination=ministerservice_mock.go -package=ministerservice

type Repo interface {
	FindAll(ctx context.Context, search string) ([]domain.Minister, error)
	FindByID(ctx context.Context, id int) (*domain.Minister, error)
	Create(ctx context.Context, minister *domain.Minister) (*domain.Minister, error)
	Update(ctx context.Context, minister *domain.Minister) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func validateMinister(m *domain.Minister) error {
	if m.FullName == "" {
		return domain.NewValidationError("full_name", "is required")
	}
	if len(m.FullName) > 100 {
		return domain.NewValidationError("full_name", "must be at most 100 characters")
	}
	if len(m.Department) > 100 {
		return domain.NewValidationError("department", "must be at most 100 characters")
	}
	if len(m.Phone) > 20 {
		return domain.NewValidationError("phone", "must be at most 20 characters")
	}
	if m.Email != "" && !validate.IsEmail(m.Email) {
		return domain.NewValidationError("email", "is not a valid email address")
	}
	if m.DateJoined.IsZero() {
		return domain.NewValidationError("date_joined", "is required")
	}
	return nil
}

func (s *Service) List(ctx context.Context, search string) ([]domain.Minister, error) {
	ministers, err := s.repo.FindAll(ctx, search)
	if err != nil {
		zap.L().Error("failed to list ministers", zap.Error(err))
		return nil, err
	}
	return ministers, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Minister, error) {
	minister, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get minister", zap.Error(err))
		return nil, err
	}
	if minister == nil {
		return nil, domain.ErrMinisterNotFound
	}
	return minister, nil
}

func (s *Service) Create(ctx context.Context, minister *domain.Minister) (*domain.Minister, error) {
	if err := validateMinister(minister); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, minister)
	if err != nil {
		zap.L().Error("failed to create minister", zap.Error(err))
		return nil, err
	}
	zap.L().Info("minister created", zap.Int("id", created.ID), zap.String("full_name", created.FullName))
	return created, nil
}

func (s *Service) Update(ctx context.Context, minister *domain.Minister) (*domain.Minister, error) {
	if err := validateMinister(minister); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, minister.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrMinisterNotFound
	}
	if err := s.repo.Update(ctx, minister); err != nil {
		zap.L().Error("failed to update minister", zap.Error(err))
		return nil, err
	}
	return minister, nil
}

// Delete removes the minister and, through the cascade, every payment that
// references it.
func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrMinisterNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete minister", zap.Error(err))
		return err
	}
	zap.L().Info("minister deleted", zap.Int("id", id))
	return nil
}
