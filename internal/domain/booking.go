package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking is a historical purchase record. Route and price are copied at
// confirmation time so later trip changes do not rewrite history.
type Booking struct {
	Ref         string        `json:"ref"`
	TripID      string        `json:"tripId"`
	Source      string        `json:"source"`
	Destination string        `json:"destination"`
	Date        string        `json:"date"`
	Price       int64         `json:"price"`
	Seats       []string      `json:"seats"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
