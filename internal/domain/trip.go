package domain

import (
	"fmt"
	"strings"
)

// Seat map shared by every coach: 10 rows in a 2+1 layout.
const (
	SeatRows     = 10
	SeatCapacity = SeatRows * 3
)

var SeatColumns = []string{"A", "B", "C"}

type Trip struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Source         string   `json:"source" yaml:"source"`
	Destination    string   `json:"destination" yaml:"destination"`
	DepartureTime  string   `json:"departureTime" yaml:"departure_time"`
	ArrivalTime    string   `json:"arrivalTime" yaml:"arrival_time"`
	Price          int64    `json:"price" yaml:"price"`
	Type           string   `json:"type" yaml:"type"`
	SeatsAvailable int      `json:"seatsAvailable" yaml:"seats_available"`
	Rating         float64  `json:"rating" yaml:"rating"`
	Duration       string   `json:"duration" yaml:"duration"`
	BookedSeats    []string `json:"bookedSeats" yaml:"booked_seats"`
}

// SeatID builds the trip-scoped identifier for one physical seat,
// e.g. SeatID("tpe-tcn-01", 3, "A") -> "tpe-tcn-01-3A".
func SeatID(tripID string, row int, col string) string {
	return fmt.Sprintf("%s-%d%s", tripID, row, col)
}

// SeatLabel returns the short display form of a seat identifier ("3A").
func SeatLabel(seatID string) string {
	if i := strings.LastIndex(seatID, "-"); i >= 0 {
		return seatID[i+1:]
	}
	return seatID
}

// ValidSeatID reports whether seatID names a seat on tripID's fixed map.
func ValidSeatID(tripID, seatID string) bool {
	for row := 1; row <= SeatRows; row++ {
		for _, col := range SeatColumns {
			if seatID == SeatID(tripID, row, col) {
				return true
			}
		}
	}
	return false
}

func (t *Trip) SeatBooked(seatID string) bool {
	for _, s := range t.BookedSeats {
		if s == seatID {
			return true
		}
	}
	return false
}
