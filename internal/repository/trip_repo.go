package repository

import (
	"fmt"

	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/snapshot"
	"github.com/zhanrui-dev/devbus/internal/store"
)

type TripRepository interface {
	List() ([]domain.Trip, error)
	GetByID(id string) (*domain.Trip, error)
	// ReserveSeats commits the seat purchase: it decrements the available
	// count and extends the booked set in one atomic step, failing without
	// effect if any requested seat is already taken.
	ReserveSeats(tripID string, seatIDs []string) error
	// ReleaseSeats returns previously booked seats to the pool.
	ReleaseSeats(tripID string, seatIDs []string) error
}

type MemTripRepository struct {
	store *store.Store
}

func NewTripRepository(s *store.Store) TripRepository {
	return &MemTripRepository{store: s}
}

func (r *MemTripRepository) List() ([]domain.Trip, error) {
	var trips []domain.Trip
	r.store.View(func(st *snapshot.State) {
		trips = make([]domain.Trip, len(st.Trips))
		copy(trips, st.Trips)
		for i := range trips {
			trips[i].BookedSeats = append([]string(nil), st.Trips[i].BookedSeats...)
		}
	})
	return trips, nil
}

func (r *MemTripRepository) GetByID(id string) (*domain.Trip, error) {
	var found *domain.Trip
	r.store.View(func(st *snapshot.State) {
		if t := findTrip(st, id); t != nil {
			c := *t
			c.BookedSeats = append([]string(nil), t.BookedSeats...)
			found = &c
		}
	})
	if found == nil {
		return nil, domain.ErrTripNotFound
	}
	return found, nil
}

func (r *MemTripRepository) ReserveSeats(tripID string, seatIDs []string) error {
	return r.store.Update(func(st *snapshot.State) error {
		t := findTrip(st, tripID)
		if t == nil {
			return domain.ErrTripNotFound
		}
		for _, id := range seatIDs {
			if !domain.ValidSeatID(tripID, id) {
				return fmt.Errorf("%w: unknown seat %q", domain.ErrValidation, id)
			}
			if t.SeatBooked(id) {
				return fmt.Errorf("%w: %s", domain.ErrSeatUnavailable, domain.SeatLabel(id))
			}
		}
		t.SeatsAvailable -= len(seatIDs)
		t.BookedSeats = append(t.BookedSeats, seatIDs...)
		return nil
	})
}

func (r *MemTripRepository) ReleaseSeats(tripID string, seatIDs []string) error {
	return r.store.Update(func(st *snapshot.State) error {
		t := findTrip(st, tripID)
		if t == nil {
			return domain.ErrTripNotFound
		}
		kept := t.BookedSeats[:0]
		released := 0
		for _, s := range t.BookedSeats {
			drop := false
			for _, id := range seatIDs {
				if s == id {
					drop = true
					break
				}
			}
			if drop {
				released++
			} else {
				kept = append(kept, s)
			}
		}
		t.BookedSeats = kept
		t.SeatsAvailable += released
		return nil
	})
}

func findTrip(st *snapshot.State, id string) *domain.Trip {
	for i := range st.Trips {
		if st.Trips[i].ID == id {
			return &st.Trips[i]
		}
	}
	return nil
}

var _ TripRepository = (*MemTripRepository)(nil)
