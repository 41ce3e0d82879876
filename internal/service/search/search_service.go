package search

import (
	"sort"
	"strings"

	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/repository"
)

// PageSize is fixed; result pages are 1-indexed.
const PageSize = 5

type SortKey string

const (
	SortByPrice  SortKey = "price"  // ascending fare
	SortByRating SortKey = "rating" // descending rating
	SortByTime   SortKey = "time"   // ascending departure (zero-padded HH:MM)
)

type SearchInput struct {
	Source      string
	Destination string
	// Date is accepted for parity with the search form but does not filter:
	// the catalog is date-independent template data.
	Date     string
	Type     string
	MaxPrice int64
	SortBy   SortKey
	Page     int
}

type SearchResult struct {
	Trips      []domain.Trip
	Page       int
	TotalPages int
	Total      int
}

type SearchUseCase interface {
	Search(input SearchInput) (*SearchResult, error)
	GetByID(id string) (*domain.Trip, error)
}

type SearchService struct {
	trips repository.TripRepository
}

func NewSearchService(trips repository.TripRepository) *SearchService {
	return &SearchService{trips: trips}
}

// Search filters, sorts and paginates the catalog. Origin/destination use
// case-insensitive substring matching; with both empty the whole catalog
// matches. The catalog itself is never mutated.
func (s *SearchService) Search(input SearchInput) (*SearchResult, error) {
	trips, err := s.trips.List()
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if matches(t, input) {
			matched = append(matched, t)
		}
	}

	sortTrips(matched, input.SortBy)

	total := len(matched)
	totalPages := (total + PageSize - 1) / PageSize
	page := input.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return &SearchResult{
		Trips:      matched[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func (s *SearchService) GetByID(id string) (*domain.Trip, error) {
	return s.trips.GetByID(id)
}

func matches(t domain.Trip, input SearchInput) bool {
	src := strings.TrimSpace(input.Source)
	dst := strings.TrimSpace(input.Destination)
	if src != "" || dst != "" {
		if !containsFold(t.Source, src) || !containsFold(t.Destination, dst) {
			return false
		}
	}
	if input.MaxPrice > 0 && t.Price > input.MaxPrice {
		return false
	}
	typ := strings.TrimSpace(input.Type)
	if typ != "" && !strings.EqualFold(typ, "All") && !containsFold(t.Type, typ) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortTrips(trips []domain.Trip, key SortKey) {
	switch key {
	case SortByPrice:
		sort.SliceStable(trips, func(i, j int) bool { return trips[i].Price < trips[j].Price })
	case SortByRating:
		sort.SliceStable(trips, func(i, j int) bool { return trips[i].Rating > trips[j].Rating })
	default:
		sort.SliceStable(trips, func(i, j int) bool { return trips[i].DepartureTime < trips[j].DepartureTime })
	}
}

var _ SearchUseCase = (*SearchService)(nil)
