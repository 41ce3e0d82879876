package repository

import (
	"fmt"

	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/snapshot"
	"github.com/zhanrui-dev/devbus/internal/store"
)

type BookingRepository interface {
	// NextRef returns a fresh human-readable booking reference. The
	// underlying counter is monotonic and persisted with the snapshot, so
	// references never collide across restarts.
	NextRef() (string, error)
	// Add prepends the booking to the account's history (most recent first).
	Add(email string, b domain.Booking) error
	ListByEmail(email string) ([]domain.Booking, error)
	GetByRef(email, ref string) (*domain.Booking, error)
	SetStatus(email, ref string, status domain.BookingStatus) error
}

type MemBookingRepository struct {
	store     *store.Store
	refPrefix string
}

func NewBookingRepository(s *store.Store, refPrefix string) BookingRepository {
	if refPrefix == "" {
		refPrefix = "DB-"
	}
	return &MemBookingRepository{store: s, refPrefix: refPrefix}
}

func (r *MemBookingRepository) NextRef() (string, error) {
	var ref string
	err := r.store.Update(func(st *snapshot.State) error {
		ref = fmt.Sprintf("%s%06d", r.refPrefix, st.NextBookingSeq)
		st.NextBookingSeq++
		return nil
	})
	return ref, err
}

func (r *MemBookingRepository) Add(email string, b domain.Booking) error {
	return r.store.Update(func(st *snapshot.State) error {
		st.BookingsByEmail[email] = append([]domain.Booking{b}, st.BookingsByEmail[email]...)
		return nil
	})
}

func (r *MemBookingRepository) ListByEmail(email string) ([]domain.Booking, error) {
	var out []domain.Booking
	r.store.View(func(st *snapshot.State) {
		out = append([]domain.Booking(nil), st.BookingsByEmail[email]...)
	})
	if out == nil {
		out = []domain.Booking{}
	}
	return out, nil
}

func (r *MemBookingRepository) GetByRef(email, ref string) (*domain.Booking, error) {
	var found *domain.Booking
	r.store.View(func(st *snapshot.State) {
		for _, b := range st.BookingsByEmail[email] {
			if b.Ref == ref {
				c := b
				c.Seats = append([]string(nil), b.Seats...)
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrBookingNotFound
	}
	return found, nil
}

func (r *MemBookingRepository) SetStatus(email, ref string, status domain.BookingStatus) error {
	return r.store.Update(func(st *snapshot.State) error {
		list := st.BookingsByEmail[email]
		for i := range list {
			if list[i].Ref == ref {
				list[i].Status = status
				return nil
			}
		}
		return domain.ErrBookingNotFound
	})
}

var _ BookingRepository = (*MemBookingRepository)(nil)
