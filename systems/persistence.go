package systems

import (
	"log"

	"github.com/automoto/tuxrun/status"
)

var progressStore *status.Store

// InitPersistence opens the save storage. Without it progress is kept for
// the session only.
func InitPersistence() error {
	store, err := status.OpenStore("tuxrun")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	progressStore = store
	return nil
}

// LoadProgress returns the saved player status, or a fresh one.
func LoadProgress() *status.Status {
	if progressStore == nil {
		return status.New()
	}
	st, err := progressStore.Load()
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
	}
	return st
}

// SaveProgress writes st to disk.
func SaveProgress(st *status.Status) {
	if progressStore == nil {
		return
	}
	if err := progressStore.Save(st); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}

// ResetProgress overwrites the save with a fresh status.
func ResetProgress() *status.Status {
	st := status.New()
	SaveProgress(st)
	return st
}
