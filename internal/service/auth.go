package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/avc/engagement-storefront/internal/utils/jwt"
	"github.com/avc/engagement-storefront/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	accountRepo    domain.AccountRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	isAdmin        func(email string) bool
}

// NewAuthService создает новый AuthService.
// isAdmin решает, получает ли аккаунт права администратора; nil означает "никто".
func NewAuthService(
	accountRepo domain.AccountRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	isAdmin func(email string) bool,
) *AuthService {
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	return &AuthService{
		accountRepo:    accountRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		isAdmin:        isAdmin,
	}
}

// Register регистрирует новый аккаунт
func (s *AuthService) Register(ctx context.Context, email, userPassword string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || userPassword == "" {
		return "", fmt.Errorf("%w: empty email or password", domain.ErrInvalidInput)
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		if errors.Is(err, password.ErrWeak) {
			return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return "", fmt.Errorf("auth service: failed to hash password for %q: %w", email, err)
	}

	account, err := s.accountRepo.CreateAccount(ctx, email, hash, s.isAdmin(email))
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrAccountExists) {
			return "", err
		}
		return "", fmt.Errorf("auth service: failed to register %q: %w", email, err)
	}

	token, err := s.jwtManager.Generate(account.ID, account.IsAdmin)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for account %d: %w", account.ID, err)
	}

	return token, nil
}

// Login аутентифицирует аккаунт
func (s *AuthService) Login(ctx context.Context, email, userPassword string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || userPassword == "" {
		return "", fmt.Errorf("%w: empty email or password", domain.ErrInvalidInput)
	}

	account, err := s.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get account %q: %w", email, err)
	}

	if err := s.passwordHasher.Check(account.PasswordHash, userPassword); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	// Список администраторов мог измениться после регистрации
	admin := account.IsAdmin || s.isAdmin(account.Email)

	token, err := s.jwtManager.Generate(account.ID, admin)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for account %d: %w", account.ID, err)
	}

	return token, nil
}
