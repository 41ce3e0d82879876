// Package catalog loads the static trip catalog used to seed a fresh store.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/zhanrui-dev/devbus/internal/domain"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Trips []domain.Trip `yaml:"trips"`
}

// LoadSeed reads the catalog fixture. Times are normalized to zero-padded
// HH:MM so that lexical ordering matches chronological ordering; a trip with
// no explicit seat count starts with the full seat map available.
func LoadSeed(path string) ([]domain.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	for i := range f.Trips {
		t := &f.Trips[i]
		if t.ID == "" {
			return nil, fmt.Errorf("catalog seed: trip %d has no id", i)
		}
		t.DepartureTime = NormalizeTime(t.DepartureTime)
		t.ArrivalTime = NormalizeTime(t.ArrivalTime)
		if t.SeatsAvailable == 0 {
			t.SeatsAvailable = domain.SeatCapacity - len(t.BookedSeats)
		}
	}
	return f.Trips, nil
}

// NormalizeTime zero-pads an H:MM clock string ("9:05" -> "09:05"). Anything
// that does not look like a clock string is returned unchanged.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ":"); i == 1 {
		return "0" + s
	}
	return s
}
