package systems

import (
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/player"
	"github.com/automoto/tuxrun/scripting"
	"github.com/automoto/tuxrun/sector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionData ties the running sector to the ebiten side. It lives here
// rather than in components because sector itself stores its entities in
// components.
type SessionData struct {
	Sector *sector.Sector
	Player *player.Player

	// Script is nil for levels without one.
	Script        *scripting.Runtime
	ScriptWatcher *config.Watcher
	TuningWatcher *config.Watcher

	// Exiting is set once the exit trigger fired; ExitTimer counts the iris
	// down and Done is raised when it closed.
	Exiting   bool
	ExitTimer float64
	Done      bool

	lastScriptErr string
}

var Session = donburi.NewComponentType[SessionData]()

// GetSession returns the session singleton, or nil outside a level.
func GetSession(e *ecs.ECS) *SessionData {
	entry, ok := Session.First(e.World)
	if !ok {
		return nil
	}
	return Session.Get(entry)
}

// NewSession stores s in the world.
func NewSession(e *ecs.ECS, s SessionData) *SessionData {
	entry := e.World.Entry(e.World.Create(Session))
	Session.SetValue(entry, s)
	return Session.Get(entry)
}

// StartExit begins the closing iris that ends the level.
func (s *SessionData) StartExit() {
	if s.Exiting {
		return
	}
	s.Exiting = true
	s.ExitTimer = config.HUD.ShrinkTime
	s.Sector.StopMusic(config.HUD.ShrinkTime)
}
