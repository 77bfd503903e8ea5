package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt учитывает только первые 72 байта
const maxLength = 72

var (
	// ErrMismatch - пароль не соответствует хешу
	ErrMismatch = errors.New("password does not match")
	// ErrWeak - пароль не проходит требования к длине
	ErrWeak = errors.New("password does not meet length requirements")
)

// Hasher хеширует и проверяет пароли
type Hasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// BCryptHasher хеширует пароли через bcrypt
type BCryptHasher struct {
	cost      int
	minLength int
}

// NewBCryptHasher создает hasher с заданной стоимостью и минимальной длиной пароля
func NewBCryptHasher(cost, minLength int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if minLength < 1 {
		minLength = 1
	}
	return &BCryptHasher{
		cost:      cost,
		minLength: minLength,
	}
}

// Validate проверяет длину пароля
func (h *BCryptHasher) Validate(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return fmt.Errorf("%w: at least %d characters", ErrWeak, h.minLength)
	}
	if len(password) > maxLength {
		return fmt.Errorf("%w: at most %d bytes", ErrWeak, maxLength)
	}
	return nil
}

// Hash проверяет и хеширует пароль
func (h *BCryptHasher) Hash(password string) (string, error) {
	if err := h.Validate(password); err != nil {
		return "", err
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// Check проверяет соответствие пароля хешу
func (h *BCryptHasher) Check(hash, password string) error {
	if hash == "" || password == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to check password: %w", err)
	}

	return nil
}
