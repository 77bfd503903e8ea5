package memory

import (
	"context"
	"sort"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

func copyDeposit(d *domain.Deposit) *domain.Deposit {
	copied := *d
	return &copied
}

// CreateDeposit создает пополнение в статусе PENDING
func (s *Store) CreateDeposit(_ context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := depositKey{method: deposit.Method, ref: deposit.ExternalRef}
	if deposit.ExternalRef != "" {
		if _, ok := s.depositByRef[key]; ok {
			return nil, domain.ErrDuplicateDeposit
		}
	}
	if _, ok := s.accounts[deposit.AccountID]; !ok {
		return nil, domain.ErrAccountNotFound
	}

	s.nextDepositID++
	stored := copyDeposit(deposit)
	stored.ID = s.nextDepositID
	stored.Status = domain.DepositStatusPending
	stored.Bonus = decimal.Zero
	stored.CreatedAt = s.now()
	stored.CompletedAt = nil

	s.deposits[stored.ID] = stored
	if stored.ExternalRef != "" {
		s.depositByRef[key] = stored.ID
	}

	return copyDeposit(stored), nil
}

// GetDeposit получает пополнение по ID
func (s *Store) GetDeposit(_ context.Context, id int64) (*domain.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deposit, ok := s.deposits[id]
	if !ok {
		return nil, domain.ErrDepositNotFound
	}
	return copyDeposit(deposit), nil
}

// GetDepositByRef получает пополнение по внешней ссылке
func (s *Store) GetDepositByRef(_ context.Context, method domain.DepositMethod, ref string) (*domain.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.depositByRef[depositKey{method: method, ref: ref}]
	if !ok {
		return nil, domain.ErrDepositNotFound
	}
	return copyDeposit(s.deposits[id]), nil
}

// ListDeposits возвращает пополнения по фильтру, новые первыми
func (s *Store) ListDeposits(_ context.Context, filter domain.DepositFilter) ([]*domain.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deposits []*domain.Deposit
	for _, d := range s.deposits {
		if filter.AccountID != nil && d.AccountID != *filter.AccountID {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		deposits = append(deposits, copyDeposit(d))
	}

	sort.Slice(deposits, func(i, j int) bool { return deposits[i].ID > deposits[j].ID })
	return deposits, nil
}

// CompleteDeposit зачисляет пополнение и бонус за первое пополнение аккаунта
func (s *Store) CompleteDeposit(_ context.Context, id int64, bonusRate decimal.Decimal) (*domain.Deposit, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deposit, ok := s.deposits[id]
	if !ok {
		return nil, false, domain.ErrDepositNotFound
	}

	switch deposit.Status {
	case domain.DepositStatusCompleted:
		return copyDeposit(deposit), false, nil
	case domain.DepositStatusRejected:
		return nil, false, domain.ErrDepositFinalized
	}

	firstDeposit := true
	for _, d := range s.deposits {
		if d.AccountID == deposit.AccountID && d.Status == domain.DepositStatusCompleted {
			firstDeposit = false
			break
		}
	}

	if _, err := s.applyBalanceChange(deposit.AccountID, deposit.Amount, domain.EntryMeta{
		Type:      domain.LedgerEntryDeposit,
		DepositID: &deposit.ID,
		Note:      string(deposit.Method) + " " + deposit.ExternalRef,
	}); err != nil {
		return nil, false, err
	}

	bonus := decimal.Zero
	if firstDeposit && bonusRate.IsPositive() {
		bonus = deposit.Amount.Mul(bonusRate).Round(2)
	}
	if bonus.IsPositive() {
		if _, err := s.applyBalanceChange(deposit.AccountID, bonus, domain.EntryMeta{
			Type:      domain.LedgerEntryBonus,
			DepositID: &deposit.ID,
			Note:      "first deposit bonus",
		}); err != nil {
			return nil, false, err
		}
	}

	now := s.now()
	deposit.Status = domain.DepositStatusCompleted
	deposit.Bonus = bonus
	deposit.CompletedAt = &now

	return copyDeposit(deposit), true, nil
}

// RejectDeposit отклоняет ожидающее пополнение
func (s *Store) RejectDeposit(_ context.Context, id int64, reason string) (*domain.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deposit, ok := s.deposits[id]
	if !ok {
		return nil, domain.ErrDepositNotFound
	}

	switch deposit.Status {
	case domain.DepositStatusRejected:
		return copyDeposit(deposit), nil
	case domain.DepositStatusCompleted:
		return nil, domain.ErrDepositFinalized
	}

	deposit.Status = domain.DepositStatusRejected
	deposit.Note = reason

	return copyDeposit(deposit), nil
}
