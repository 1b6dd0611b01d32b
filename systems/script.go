package systems

import (
	"log"

	"github.com/automoto/tuxrun/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScript reloads an edited level script and runs its update hook.
// Errors are logged once until the script produces a different one.
func UpdateScript(e *ecs.ECS) {
	s := GetSession(e)
	if s == nil || s.Script == nil {
		return
	}
	if s.ScriptWatcher != nil {
		s.Script.ApplyChanges(s.ScriptWatcher)
	}
	s.reportScriptError(s.Script.Update(1 / float64(config.C.TPS)))
}

// RunTrigger forwards a sector trigger to the level script.
func (s *SessionData) RunTrigger(name string) {
	if s.Script == nil {
		return
	}
	s.reportScriptError(s.Script.Trigger(name))
}

func (s *SessionData) reportScriptError(err error) {
	if err == nil {
		s.lastScriptErr = ""
		return
	}
	if msg := err.Error(); msg != s.lastScriptErr {
		s.lastScriptErr = msg
		log.Printf("Warning: script: %v", err)
	}
}
