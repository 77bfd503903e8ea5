package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	captureCompleted = "COMPLETED"
	qrCodeSize       = 256
)

// DepositOptions - параметры пополнения кошелька
type DepositOptions struct {
	Currency  string
	BonusRate decimal.Decimal
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal

	GCashRecipientName   string
	GCashRecipientNumber string
	// GCashExchangeRate - песо за единицу валюты кошелька
	GCashExchangeRate decimal.Decimal
}

// DepositService реализует domain.DepositService и domain.DepositAdminService
type DepositService struct {
	depositRepo domain.DepositRepository
	gateway     domain.PaymentGateway
	opts        DepositOptions
	logger      *zap.Logger
}

// NewDepositService создает новый DepositService
func NewDepositService(
	depositRepo domain.DepositRepository,
	gateway domain.PaymentGateway,
	opts DepositOptions,
	logger *zap.Logger,
) *DepositService {
	return &DepositService{
		depositRepo: depositRepo,
		gateway:     gateway,
		opts:        opts,
		logger:      logger,
	}
}

func (s *DepositService) validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	if s.opts.MinAmount.IsPositive() && amount.LessThan(s.opts.MinAmount) {
		return fmt.Errorf("%w: minimum deposit is %s", domain.ErrInvalidAmount, s.opts.MinAmount.StringFixed(2))
	}
	if s.opts.MaxAmount.IsPositive() && amount.GreaterThan(s.opts.MaxAmount) {
		return fmt.Errorf("%w: maximum deposit is %s", domain.ErrInvalidAmount, s.opts.MaxAmount.StringFixed(2))
	}
	return nil
}

// CreatePayPalDeposit создает заказ PayPal и ожидающее пополнение
func (s *DepositService) CreatePayPalDeposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Deposit, error) {
	if err := s.validateAmount(amount); err != nil {
		return nil, err
	}

	ref, err := s.gateway.CreateOrder(ctx, amount, s.opts.Currency, uuid.NewString())
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("deposit service: failed to create paypal order: %w", err)
	}

	deposit, err := s.depositRepo.CreateDeposit(ctx, &domain.Deposit{
		AccountID:   accountID,
		Amount:      amount,
		Method:      domain.DepositMethodPayPal,
		ExternalRef: ref,
	})
	if err != nil {
		return nil, fmt.Errorf("deposit service: failed to save paypal deposit %s: %w", ref, err)
	}

	s.logger.Info("PayPal deposit created",
		zap.Int64("deposit_id", deposit.ID),
		zap.Int64("account_id", accountID),
		zap.String("reference", ref),
	)
	return deposit, nil
}

// CapturePayPalDeposit списывает одобренный платеж и зачисляет пополнение.
// Кошелек пополняется только при статусе COMPLETED, повторный вызов ничего не меняет.
func (s *DepositService) CapturePayPalDeposit(ctx context.Context, accountID int64, ref string) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.GetDepositByRef(ctx, domain.DepositMethodPayPal, ref)
	if err != nil {
		if errors.Is(err, domain.ErrDepositNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("deposit service: failed to get deposit %s: %w", ref, err)
	}
	if deposit.AccountID != accountID {
		return nil, domain.ErrDepositNotFound
	}

	switch deposit.Status {
	case domain.DepositStatusCompleted:
		return deposit, nil
	case domain.DepositStatusRejected:
		return nil, domain.ErrDepositFinalized
	}

	capture, err := s.gateway.CaptureOrder(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnavailable) || errors.Is(err, domain.ErrPaymentNotCompleted) {
			return nil, err
		}
		return nil, fmt.Errorf("deposit service: failed to capture %s: %w", ref, err)
	}

	if capture.Status != captureCompleted {
		s.logger.Info("PayPal capture not completed",
			zap.String("reference", ref),
			zap.String("status", capture.Status),
		)
		return nil, fmt.Errorf("%w: capture status %s", domain.ErrPaymentNotCompleted, capture.Status)
	}

	if capture.Amount.IsPositive() && !capture.Amount.Equal(deposit.Amount) {
		s.logger.Error("PayPal captured amount differs from deposit",
			zap.String("reference", ref),
			zap.String("captured", capture.Amount.StringFixed(2)),
			zap.String("expected", deposit.Amount.StringFixed(2)),
		)
		return nil, fmt.Errorf("deposit service: captured %s does not match deposit %s",
			capture.Amount.StringFixed(2), deposit.Amount.StringFixed(2))
	}

	// Деньги уже списаны у покупателя, зачисление не должно прерываться отменой запроса
	completed, changed, err := s.depositRepo.CompleteDeposit(context.WithoutCancel(ctx), deposit.ID, s.opts.BonusRate)
	if err != nil {
		return nil, fmt.Errorf("deposit service: failed to complete deposit %d: %w", deposit.ID, err)
	}

	if changed {
		s.logger.Info("PayPal deposit completed",
			zap.Int64("deposit_id", completed.ID),
			zap.String("amount", completed.Amount.StringFixed(2)),
			zap.String("bonus", completed.Bonus.StringFixed(2)),
		)
	}
	return completed, nil
}

// CreateGCashDeposit создает ожидающее ручное пополнение и реквизиты для перевода
func (s *DepositService) CreateGCashDeposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.GCashInstructions, error) {
	if err := s.validateAmount(amount); err != nil {
		return nil, err
	}

	deposit, err := s.depositRepo.CreateDeposit(ctx, &domain.Deposit{
		AccountID:   accountID,
		Amount:      amount,
		Method:      domain.DepositMethodGCash,
		ExternalRef: gcashReference(),
	})
	if err != nil {
		return nil, fmt.Errorf("deposit service: failed to save gcash deposit: %w", err)
	}

	s.logger.Info("GCash deposit created",
		zap.Int64("deposit_id", deposit.ID),
		zap.Int64("account_id", accountID),
		zap.String("reference", deposit.ExternalRef),
	)
	return s.instructions(deposit), nil
}

// GCashQRCode возвращает PNG с реквизитами перевода для пополнения GCash
func (s *DepositService) GCashQRCode(ctx context.Context, accountID, depositID int64) ([]byte, error) {
	deposit, err := s.depositRepo.GetDeposit(ctx, depositID)
	if err != nil {
		if errors.Is(err, domain.ErrDepositNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("deposit service: failed to get deposit %d: %w", depositID, err)
	}
	if deposit.AccountID != accountID || deposit.Method != domain.DepositMethodGCash {
		return nil, domain.ErrDepositNotFound
	}

	instructions := s.instructions(deposit)
	payload := fmt.Sprintf("GCash %s %s\nAmount: PHP %s\nReference: %s",
		instructions.RecipientNumber,
		instructions.RecipientName,
		instructions.AmountPHP.StringFixed(2),
		deposit.ExternalRef,
	)

	png, err := qrcode.Encode(payload, qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("deposit service: failed to encode qr code: %w", err)
	}

	return png, nil
}

func (s *DepositService) instructions(deposit *domain.Deposit) *domain.GCashInstructions {
	return &domain.GCashInstructions{
		Deposit:         deposit,
		RecipientName:   s.opts.GCashRecipientName,
		RecipientNumber: s.opts.GCashRecipientNumber,
		AmountPHP:       deposit.Amount.Mul(s.opts.GCashExchangeRate).Round(2),
	}
}

// gcashReference - короткая ссылка, которую покупатель указывает в переводе
func gcashReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "GC-" + strings.ToUpper(id[:10])
}

// ListDeposits получает пополнения аккаунта
func (s *DepositService) ListDeposits(ctx context.Context, accountID int64) ([]*domain.Deposit, error) {
	deposits, err := s.depositRepo.ListDeposits(ctx, domain.DepositFilter{AccountID: &accountID})
	if err != nil {
		return nil, fmt.Errorf("deposit service: failed to list deposits for account %d: %w", accountID, err)
	}

	return deposits, nil
}

// ListAllDeposits возвращает пополнения всех аккаунтов по фильтру
func (s *DepositService) ListAllDeposits(ctx context.Context, filter domain.DepositFilter) ([]*domain.Deposit, error) {
	deposits, err := s.depositRepo.ListDeposits(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("deposit service: failed to list deposits: %w", err)
	}

	return deposits, nil
}

// ApproveDeposit подтверждает ручное пополнение GCash
func (s *DepositService) ApproveDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.GetDeposit(ctx, depositID)
	if err != nil {
		if errors.Is(err, domain.ErrDepositNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("deposit service: failed to get deposit %d: %w", depositID, err)
	}

	// PayPal зачисляется только по факту списания в шлюзе
	if deposit.Method != domain.DepositMethodGCash {
		return nil, fmt.Errorf("%w: only manual deposits can be approved", domain.ErrInvalidInput)
	}

	completed, changed, err := s.depositRepo.CompleteDeposit(ctx, depositID, s.opts.BonusRate)
	if err != nil {
		if errors.Is(err, domain.ErrDepositFinalized) || errors.Is(err, domain.ErrDepositNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("deposit service: failed to approve deposit %d: %w", depositID, err)
	}

	if changed {
		s.logger.Info("GCash deposit approved",
			zap.Int64("deposit_id", depositID),
			zap.String("amount", completed.Amount.StringFixed(2)),
			zap.String("bonus", completed.Bonus.StringFixed(2)),
		)
	}
	return completed, nil
}

// RejectDeposit отклоняет ожидающее пополнение
func (s *DepositService) RejectDeposit(ctx context.Context, depositID int64, reason string) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.RejectDeposit(ctx, depositID, reason)
	if err != nil {
		if errors.Is(err, domain.ErrDepositFinalized) || errors.Is(err, domain.ErrDepositNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("deposit service: failed to reject deposit %d: %w", depositID, err)
	}

	s.logger.Info("Deposit rejected", zap.Int64("deposit_id", depositID), zap.String("reason", reason))
	return deposit, nil
}
