package repository

import (
	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/snapshot"
	"github.com/zhanrui-dev/devbus/internal/store"
)

type AccountRepository interface {
	// Create stores a new account and initializes its empty booking
	// history. First write wins: a duplicate email fails the whole call.
	Create(acc domain.Account) error
	GetByEmail(email string) (*domain.Account, error)
}

type MemAccountRepository struct {
	store *store.Store
}

func NewAccountRepository(s *store.Store) AccountRepository {
	return &MemAccountRepository{store: s}
}

func (r *MemAccountRepository) Create(acc domain.Account) error {
	return r.store.Update(func(st *snapshot.State) error {
		if _, exists := st.Accounts[acc.Email]; exists {
			return domain.ErrDuplicateEmail
		}
		st.Accounts[acc.Email] = acc
		if _, ok := st.BookingsByEmail[acc.Email]; !ok {
			st.BookingsByEmail[acc.Email] = []domain.Booking{}
		}
		return nil
	})
}

func (r *MemAccountRepository) GetByEmail(email string) (*domain.Account, error) {
	var found *domain.Account
	r.store.View(func(st *snapshot.State) {
		if acc, ok := st.Accounts[email]; ok {
			found = &acc
		}
	})
	if found == nil {
		return nil, domain.ErrNoSuchAccount
	}
	return found, nil
}

var _ AccountRepository = (*MemAccountRepository)(nil)
