package booking

import (
	"context"
	"log"
	"time"

	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/repository"
)

type BookingUseCase interface {
	Confirm(ctx context.Context, input ConfirmInput) (*domain.Booking, error)
	Cancel(ctx context.Context, email, ref string) (*domain.Booking, error)
	ListByEmail(email string) ([]domain.Booking, error)
	GetByRef(email, ref string) (*domain.Booking, error)
}

// Selections is the slice of the checkout state the booking flow needs.
type Selections interface {
	Get(email string) *domain.Selection
	Reset(email string)
}

type ConfirmInput struct {
	Email  string `json:"email"`
	TripID string `json:"trip_id"`
	Date   string `json:"date"`
}

type BookingService struct {
	bookings     repository.BookingRepository
	trips        repository.TripRepository
	selections   Selections
	paymentDelay time.Duration
	now          func() time.Time
}

type BookingServiceOption func(*BookingService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	trips repository.TripRepository,
	selections Selections,
	paymentDelay time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		trips:        trips,
		selections:   selections,
		paymentDelay: paymentDelay,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Confirm turns the account's active selection into a booking. The simulated
// payment delay runs first and is cancellable: if ctx is done before it
// elapses, no state changes. The seat commit itself (decrement available,
// extend booked) is atomic in the trip repository.
func (s *BookingService) Confirm(ctx context.Context, input ConfirmInput) (*domain.Booking, error) {
	sel := s.selections.Get(input.Email)
	if sel == nil || len(sel.Seats) == 0 || sel.TripID != input.TripID {
		return nil, domain.ErrEmptySelection
	}

	trip, err := s.trips.GetByID(input.TripID)
	if err != nil {
		return nil, err
	}

	if s.paymentDelay > 0 {
		timer := time.NewTimer(s.paymentDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := s.trips.ReserveSeats(input.TripID, sel.Seats); err != nil {
		return nil, err
	}

	ref, err := s.bookings.NextRef()
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	b := domain.Booking{
		Ref:         ref,
		TripID:      trip.ID,
		Source:      trip.Source,
		Destination: trip.Destination,
		Date:        date,
		Price:       sel.TotalPrice(),
		Seats:       sel.SeatLabels(),
		Status:      domain.BookingStatusConfirmed,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.bookings.Add(input.Email, b); err != nil {
		// The seats are committed but the record failed; put them back so
		// the inventory does not leak.
		if relErr := s.trips.ReleaseSeats(input.TripID, sel.Seats); relErr != nil {
			log.Printf("booking: release after failed add: %v", relErr)
		}
		return nil, err
	}

	s.selections.Reset(input.Email)
	return &b, nil
}

// Cancel flips a confirmed booking to cancelled and returns its seats to the
// trip's pool. Cancelling an already-cancelled booking is a no-op. The paid
// price stays on the record.
func (s *BookingService) Cancel(ctx context.Context, email, ref string) (*domain.Booking, error) {
	current, err := s.bookings.GetByRef(email, ref)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	if err := s.bookings.SetStatus(email, ref, domain.BookingStatusCancelled); err != nil {
		return nil, err
	}

	seatIDs := make([]string, 0, len(current.Seats))
	for _, label := range current.Seats {
		seatIDs = append(seatIDs, current.TripID+"-"+label)
	}
	if err := s.trips.ReleaseSeats(current.TripID, seatIDs); err != nil {
		log.Printf("booking: release seats for %s: %v", ref, err)
	}

	current.Status = domain.BookingStatusCancelled
	return current, nil
}

func (s *BookingService) ListByEmail(email string) ([]domain.Booking, error) {
	return s.bookings.ListByEmail(email)
}

func (s *BookingService) GetByRef(email, ref string) (*domain.Booking, error) {
	return s.bookings.GetByRef(email, ref)
}

var _ BookingUseCase = (*BookingService)(nil)
