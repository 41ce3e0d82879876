// Package snapshot persists the whole application state as a single JSON
// blob on disk. A missing or unreadable snapshot is never an error: the
// caller falls back to the seeded defaults.
package snapshot

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/zhanrui-dev/devbus/internal/domain"
)

// State is the durable portion of the application: the catalog (to keep seat
// inventory across sessions) and the account slice (identities plus booking
// histories). Selections are deliberately absent; they are checkout-scoped.
type State struct {
	Trips           []domain.Trip                `json:"trips"`
	Accounts        map[string]domain.Account    `json:"accounts"`
	BookingsByEmail map[string][]domain.Booking  `json:"bookingsByEmail"`
	NextBookingSeq  uint64                       `json:"nextBookingSeq"`
}

type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the snapshot. The second return value is false when the file is
// missing or malformed, in which case the caller starts from defaults.
func (f *File) Load() (*State, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("snapshot: could not load state: %v", err)
		}
		return nil, false
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("snapshot: could not parse state: %v", err)
		return nil, false
	}
	return &st, true
}

// Save writes the snapshot. Failures are logged and swallowed; persistence
// must never take the process down.
func (f *File) Save(st *State) {
	data, err := json.Marshal(st)
	if err != nil {
		log.Printf("snapshot: could not serialize state: %v", err)
		return
	}
	if dir := filepath.Dir(f.path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("snapshot: could not save state: %v", err)
		return
	}
	if err := os.Rename(tmp, f.path); err != nil {
		log.Printf("snapshot: could not save state: %v", err)
	}
}
