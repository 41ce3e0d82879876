package selection

import (
	"fmt"
	"sync"

	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/repository"
)

type SelectionUseCase interface {
	// Toggle adds the seat to the account's active selection, or removes it
	// when already chosen. Seats already sold on the trip are rejected, as
	// is growing the selection past the six-seat cap.
	Toggle(email, tripID, seatID string) (*domain.Selection, error)
	Get(email string) *domain.Selection
	Reset(email string)
}

// SelectionService keeps one in-progress checkout per account. Selections
// are checkout-scoped and never persisted to the snapshot.
type SelectionService struct {
	trips repository.TripRepository

	mu     sync.Mutex
	active map[string]*domain.Selection
}

func NewSelectionService(trips repository.TripRepository) *SelectionService {
	return &SelectionService{
		trips:  trips,
		active: make(map[string]*domain.Selection),
	}
}

func (s *SelectionService) Toggle(email, tripID, seatID string) (*domain.Selection, error) {
	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		return nil, err
	}
	if !domain.ValidSeatID(tripID, seatID) {
		return nil, fmt.Errorf("%w: unknown seat %q", domain.ErrValidation, seatID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.active[email]
	if sel == nil || sel.TripID != tripID {
		// Starting a checkout for another trip discards the old selection.
		sel = &domain.Selection{TripID: tripID, BasePrice: trip.Price}
		s.active[email] = sel
	}

	if sel.Contains(seatID) {
		kept := sel.Seats[:0]
		for _, id := range sel.Seats {
			if id != seatID {
				kept = append(kept, id)
			}
		}
		sel.Seats = kept
		return snapshotOf(sel), nil
	}

	if trip.SeatBooked(seatID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSeatUnavailable, domain.SeatLabel(seatID))
	}
	if len(sel.Seats) >= domain.MaxSelectionSeats {
		return nil, domain.ErrSelectionFull
	}
	sel.Seats = append(sel.Seats, seatID)
	return snapshotOf(sel), nil
}

func (s *SelectionService) Get(email string) *domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.active[email]
	if sel == nil {
		return &domain.Selection{Seats: []string{}}
	}
	return snapshotOf(sel)
}

func (s *SelectionService) Reset(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, email)
}

func snapshotOf(sel *domain.Selection) *domain.Selection {
	c := *sel
	c.Seats = append([]string{}, sel.Seats...)
	return &c
}

var _ SelectionUseCase = (*SelectionService)(nil)
