package paymentservice

import (
	"context"
	"time"

	"github.com/kepha-wiz/ministers/internal/domain"
	"github.com/kepha-wiz/ministers/internal/pg"

	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=paymentservice_mock.go -package=paymentservice

type PaymentRepo interface {
	FindAll(ctx context.Context, start, end *time.Time) ([]domain.Payment, error)
	FindByID(ctx context.Context, id int) (*domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id int) error
}

type MinisterRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Minister, error)
	RecalculateTotalSavings(ctx context.Context, ministerID int) error
}

type Service struct {
	paymentRepo  PaymentRepo
	ministerRepo MinisterRepo
	txManager    pg.TXManager
}

func New(paymentRepo PaymentRepo, ministerRepo MinisterRepo, txManager pg.TXManager) *Service {
	return &Service{
		paymentRepo:  paymentRepo,
		ministerRepo: ministerRepo,
		txManager:    txManager,
	}
}

const minAmount = 0.01

func validatePayment(p *domain.Payment) error {
	if p.MinisterID <= 0 {
		return domain.NewValidationError("minister_id", "is required")
	}
	if p.Amount <= minAmount {
		return domain.NewValidationError("amount", "must be greater than 0.01")
	}
	if p.PaymentDate.IsZero() {
		return domain.NewValidationError("payment_date", "is required")
	}
	return nil
}

func (s *Service) List(ctx context.Context, start, end *time.Time) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx, start, end)
	if err != nil {
		zap.L().Error("failed to list payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get payment", zap.Error(err))
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}
	return payment, nil
}

// Create records a payment and recalculates the minister's total savings in
// the same transaction. A zero week number is replaced with the ISO-8601 week
// of the payment date.
func (s *Service) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := validatePayment(payment); err != nil {
		return nil, err
	}
	minister, err := s.ministerRepo.FindByID(ctx, payment.MinisterID)
	if err != nil {
		return nil, err
	}
	if minister == nil {
		return nil, domain.ErrMinisterNotFound
	}
	if payment.WeekNumber == 0 {
		_, payment.WeekNumber = payment.PaymentDate.ISOWeek()
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}
		return s.ministerRepo.RecalculateTotalSavings(ctx, payment.MinisterID)
	})
	if err != nil {
		zap.L().Error("failed to create payment", zap.Error(err))
		return nil, err
	}
	zap.L().Info("payment recorded",
		zap.Int("id", payment.ID),
		zap.Int("minister_id", payment.MinisterID),
		zap.Float64("amount", payment.Amount))
	return payment, nil
}

// Update edits a payment. When the minister reference changes, both the old
// and the new minister's totals are recalculated inside the same transaction
// as the edit.
func (s *Service) Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := validatePayment(payment); err != nil {
		return nil, err
	}
	existing, err := s.paymentRepo.FindByID(ctx, payment.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrPaymentNotFound
	}
	minister, err := s.ministerRepo.FindByID(ctx, payment.MinisterID)
	if err != nil {
		return nil, err
	}
	if minister == nil {
		return nil, domain.ErrMinisterNotFound
	}
	if payment.WeekNumber == 0 {
		_, payment.WeekNumber = payment.PaymentDate.ISOWeek()
	}

	oldMinisterID := existing.MinisterID
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return err
		}
		if oldMinisterID != payment.MinisterID {
			if err := s.ministerRepo.RecalculateTotalSavings(ctx, oldMinisterID); err != nil {
				return err
			}
		}
		return s.ministerRepo.RecalculateTotalSavings(ctx, payment.MinisterID)
	})
	if err != nil {
		zap.L().Error("failed to update payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrPaymentNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.ministerRepo.RecalculateTotalSavings(ctx, existing.MinisterID)
	})
	if err != nil {
		zap.L().Error("failed to delete payment", zap.Error(err))
		return err
	}
	zap.L().Info("payment deleted", zap.Int("id", id))
	return nil
}
