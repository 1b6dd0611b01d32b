package scripting

import (
	"log"
	"os"

	"github.com/automoto/tuxrun/config"
)

// ApplyChanges reloads the script for every change w has reported since the
// last call. Call it between frames.
func (r *Runtime) ApplyChanges(w *config.Watcher) {
	for {
		path, ok := w.Poll()
		if !ok {
			return
		}
		src, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: reading script %s: %v", path, err)
			continue
		}
		if err := r.Reload(src); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}
