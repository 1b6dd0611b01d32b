package status

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const statusKey = "status"

// itemStore is the part of gdata.Manager the Store needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store persists Status between sessions.
type Store struct {
	items itemStore
}

// OpenStore opens the gdata storage for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("status: open storage: %w", err)
	}
	return &Store{items: m}, nil
}

// Load returns the saved status, or a fresh one when nothing was saved yet.
func (s *Store) Load() (*Status, error) {
	data, err := s.items.LoadItem(statusKey)
	if err != nil {
		return New(), fmt.Errorf("status: load: %w", err)
	}
	if data == nil {
		return New(), nil
	}

	var st Status
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("Warning: Could not parse saved status: %v", err)
		return New(), fmt.Errorf("status: parse: %w", err)
	}
	if st.Bonus < NoBonus || st.Bonus > IceBonus {
		st.Bonus = NoBonus
	}
	return &st, nil
}

// Save writes st to storage.
func (s *Store) Save(st *Status) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("status: serialize: %w", err)
	}
	if err := s.items.SaveItem(statusKey, data); err != nil {
		return fmt.Errorf("status: save: %w", err)
	}
	return nil
}
