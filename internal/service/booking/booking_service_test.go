package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zhanrui-dev/devbus/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) NextRef() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) Add(email string, b domain.Booking) error {
	args := m.Called(email, b)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByEmail(email string) ([]domain.Booking, error) {
	args := m.Called(email)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByRef(email, ref string) (*domain.Booking, error) {
	args := m.Called(email, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetStatus(email, ref string, status domain.BookingStatus) error {
	args := m.Called(email, ref, status)
	return args.Error(0)
}

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) List() ([]domain.Trip, error) {
	args := m.Called()
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) GetByID(id string) (*domain.Trip, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ReserveSeats(tripID string, seatIDs []string) error {
	args := m.Called(tripID, seatIDs)
	return args.Error(0)
}

func (m *MockTripRepository) ReleaseSeats(tripID string, seatIDs []string) error {
	args := m.Called(tripID, seatIDs)
	return args.Error(0)
}

type MockSelections struct {
	mock.Mock
}

func (m *MockSelections) Get(email string) *domain.Selection {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Selection)
}

func (m *MockSelections) Reset(email string) {
	m.Called(email)
}

const email = "a@b.com"

func TestBookingService_Confirm_Success(t *testing.T) {
	bookings := &MockBookingRepository{}
	trips := &MockTripRepository{}
	selections := &MockSelections{}

	trip := &domain.Trip{ID: "bus-1", Source: "Taipei", Destination: "Taichung", Price: 380, SeatsAvailable: 40}
	sel := &domain.Selection{TripID: "bus-1", Seats: []string{"bus-1-1A", "bus-1-1B"}, BasePrice: 380}

	selections.On("Get", email).Return(sel).Once()
	trips.On("GetByID", "bus-1").Return(trip, nil).Once()
	trips.On("ReserveSeats", "bus-1", sel.Seats).Return(nil).Once()
	bookings.On("NextRef").Return("DB-100001", nil).Once()
	bookings.On("Add", email, mock.AnythingOfType("domain.Booking")).Return(nil).Once()
	selections.On("Reset", email).Once()

	svc := NewBookingService(bookings, trips, selections, 0)

	b, err := svc.Confirm(context.Background(), ConfirmInput{Email: email, TripID: "bus-1", Date: "2026-09-01"})
	require.NoError(t, err)

	assert.Equal(t, "DB-100001", b.Ref)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, []string{"1A", "1B"}, b.Seats)
	assert.Equal(t, int64(760), b.Price)
	assert.Equal(t, "Taipei", b.Source)
	assert.Equal(t, "Taichung", b.Destination)
	assert.Equal(t, "2026-09-01", b.Date)

	bookings.AssertExpectations(t)
	trips.AssertExpectations(t)
	selections.AssertExpectations(t)
}

func TestBookingService_Confirm_EmptySelection(t *testing.T) {
	bookings := &MockBookingRepository{}
	trips := &MockTripRepository{}
	selections := &MockSelections{}

	selections.On("Get", email).Return(&domain.Selection{Seats: []string{}}).Once()

	svc := NewBookingService(bookings, trips, selections, 0)

	_, err := svc.Confirm(context.Background(), ConfirmInput{Email: email, TripID: "bus-1"})
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
	trips.AssertNotCalled(t, "ReserveSeats", mock.Anything, mock.Anything)
}

func TestBookingService_Confirm_CancelledContextHasNoEffect(t *testing.T) {
	bookings := &MockBookingRepository{}
	trips := &MockTripRepository{}
	selections := &MockSelections{}

	sel := &domain.Selection{TripID: "bus-1", Seats: []string{"bus-1-1A"}, BasePrice: 380}
	selections.On("Get", email).Return(sel).Once()
	trips.On("GetByID", "bus-1").Return(&domain.Trip{ID: "bus-1", Price: 380}, nil).Once()

	// A long delay so cancellation always wins the race.
	svc := NewBookingService(bookings, trips, selections, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Confirm(ctx, ConfirmInput{Email: email, TripID: "bus-1"})
		done <- err
	}()
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	trips.AssertNotCalled(t, "ReserveSeats", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	selections.AssertNotCalled(t, "Reset", mock.Anything)
}

func TestBookingService_Confirm_SeatAlreadyBooked(t *testing.T) {
	bookings := &MockBookingRepository{}
	trips := &MockTripRepository{}
	selections := &MockSelections{}

	sel := &domain.Selection{TripID: "bus-1", Seats: []string{"bus-1-1A"}, BasePrice: 380}
	selections.On("Get", email).Return(sel).Once()
	trips.On("GetByID", "bus-1").Return(&domain.Trip{ID: "bus-1", Price: 380}, nil).Once()
	trips.On("ReserveSeats", "bus-1", sel.Seats).Return(domain.ErrSeatUnavailable).Once()

	svc := NewBookingService(bookings, trips, selections, 0)

	_, err := svc.Confirm(context.Background(), ConfirmInput{Email: email, TripID: "bus-1"})
	assert.ErrorIs(t, err, domain.ErrSeatUnavailable)
	bookings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	selections.AssertNotCalled(t, "Reset", mock.Anything)
}

func TestBookingService_Cancel_ReleasesSeats(t *testing.T) {
	bookings := &MockBookingRepository{}
	trips := &MockTripRepository{}
	selections := &MockSelections{}

	confirmed := &domain.Booking{
		Ref: "DB-100001", TripID: "bus-1", Seats: []string{"1A", "1B"},
		Price: 760, Status: domain.BookingStatusConfirmed,
	}
	bookings.On("GetByRef", email, "DB-100001").Return(confirmed, nil).Once()
	bookings.On("SetStatus", email, "DB-100001", domain.BookingStatusCancelled).Return(nil).Once()
	trips.On("ReleaseSeats", "bus-1", []string{"bus-1-1A", "bus-1-1B"}).Return(nil).Once()

	svc := NewBookingService(bookings, trips, selections, 0)

	b, err := svc.Cancel(context.Background(), email, "DB-100001")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	assert.Equal(t, int64(760), b.Price) // price is not refunded on the record

	bookings.AssertExpectations(t)
	trips.AssertExpectations(t)
}

func TestBookingService_Cancel_Idempotent(t *testing.T) {
	bookings := &MockBookingRepository{}
	trips := &MockTripRepository{}
	selections := &MockSelections{}

	cancelled := &domain.Booking{Ref: "DB-100001", TripID: "bus-1", Status: domain.BookingStatusCancelled}
	bookings.On("GetByRef", email, "DB-100001").Return(cancelled, nil).Once()

	svc := NewBookingService(bookings, trips, selections, 0)

	b, err := svc.Cancel(context.Background(), email, "DB-100001")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)

	bookings.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	trips.AssertNotCalled(t, "ReleaseSeats", mock.Anything, mock.Anything)
}

func TestBookingService_Cancel_UnknownRef(t *testing.T) {
	bookings := &MockBookingRepository{}
	trips := &MockTripRepository{}
	selections := &MockSelections{}

	bookings.On("GetByRef", email, "DB-999999").Return(nil, domain.ErrBookingNotFound).Once()

	svc := NewBookingService(bookings, trips, selections, 0)

	_, err := svc.Cancel(context.Background(), email, "DB-999999")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
