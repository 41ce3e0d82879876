// Package store holds the process-wide booking state behind an explicit
// handle. All mutation goes through Update, which runs the change inside the
// store's critical section and then writes the snapshot through synchronously.
package store

import (
	"sync"

	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/snapshot"
)

// Persister writes the durable state after every mutation. Nil is allowed in
// tests that do not care about persistence.
type Persister interface {
	Save(*snapshot.State)
}

type Store struct {
	mu    sync.Mutex
	state snapshot.State
	snap  Persister
}

const firstBookingSeq = 100001

// Open builds the store from the snapshot when one exists, otherwise from
// the seeded catalog and empty account state.
func Open(seed []domain.Trip, snap *snapshot.File) *Store {
	s := &Store{snap: snap}
	if snap != nil {
		if st, ok := snap.Load(); ok {
			s.state = *st
			s.ensureMaps()
			return s
		}
	}
	s.state = snapshot.State{
		Trips:          cloneTrips(seed),
		NextBookingSeq: firstBookingSeq,
	}
	s.ensureMaps()
	return s
}

// New builds an empty store over the given trips without persistence.
func New(trips []domain.Trip) *Store {
	s := &Store{}
	s.state = snapshot.State{
		Trips:          cloneTrips(trips),
		NextBookingSeq: firstBookingSeq,
	}
	s.ensureMaps()
	return s
}

func (s *Store) ensureMaps() {
	if s.state.Accounts == nil {
		s.state.Accounts = make(map[string]domain.Account)
	}
	if s.state.BookingsByEmail == nil {
		s.state.BookingsByEmail = make(map[string][]domain.Booking)
	}
	if s.state.NextBookingSeq == 0 {
		s.state.NextBookingSeq = firstBookingSeq
	}
}

// View runs fn with read access to the state. fn must not retain references
// to slices or maps past its return.
func (s *Store) View(fn func(*snapshot.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Update runs fn inside the critical section and, when it succeeds, persists
// the new state write-through. A failed fn leaves nothing to persist: callers
// must not partially mutate before returning an error.
func (s *Store) Update(fn func(*snapshot.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.state); err != nil {
		return err
	}
	if s.snap != nil {
		s.snap.Save(&s.state)
	}
	return nil
}

func cloneTrips(trips []domain.Trip) []domain.Trip {
	out := make([]domain.Trip, len(trips))
	copy(out, trips)
	for i := range out {
		out[i].BookedSeats = append([]string(nil), trips[i].BookedSeats...)
	}
	return out
}
