package systems

import (
	"github.com/automoto/tuxrun/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning applies tuning file edits between frames.
func UpdateTuning(e *ecs.ECS) {
	s := GetSession(e)
	if s == nil || s.TuningWatcher == nil {
		return
	}
	config.ApplyTuningChanges(s.TuningWatcher)
}

// UpdateSector advances the level by one tick and keeps the player inside
// the camera window.
func UpdateSector(e *ecs.ECS) {
	s := GetSession(e)
	if s == nil || s.Done {
		return
	}
	dt := 1 / float64(config.C.TPS)
	s.Sector.Update(dt)

	if s.Exiting {
		s.ExitTimer -= dt
		if s.ExitTimer <= 0 {
			s.Done = true
		}
		return
	}

	if cam := GetCamera(e); cam != nil {
		left := cam.Position.X - float64(config.C.Width)/2
		s.Player.CheckBounds(left, float64(config.C.Width))
	}
}
