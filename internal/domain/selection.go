package domain

// MaxSelectionSeats caps how many seats one checkout may hold.
const MaxSelectionSeats = 6

// Selection is the ephemeral set of seats chosen mid-checkout for a single
// trip. Insertion order is preserved for display. The total price is always
// derived from the seat count so it cannot drift.
type Selection struct {
	TripID    string   `json:"tripId"`
	Seats     []string `json:"seats"`
	BasePrice int64    `json:"basePrice"`
}

func (s *Selection) TotalPrice() int64 {
	return int64(len(s.Seats)) * s.BasePrice
}

func (s *Selection) Contains(seatID string) bool {
	for _, id := range s.Seats {
		if id == seatID {
			return true
		}
	}
	return false
}

// SeatLabels returns the short display labels in selection order.
func (s *Selection) SeatLabels() []string {
	labels := make([]string, 0, len(s.Seats))
	for _, id := range s.Seats {
		labels = append(labels, SeatLabel(id))
	}
	return labels
}
