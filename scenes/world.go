package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tuxrun/archetypes"
	"github.com/automoto/tuxrun/assets"
	"github.com/automoto/tuxrun/components"
	cfg "github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/player"
	"github.com/automoto/tuxrun/sector"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
	"github.com/automoto/tuxrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	session      *systems.SessionData
	sceneChanger SceneChanger
	status       *status.Status
	once         sync.Once

	// respawn is the reset point to start from after a death, nil for the
	// level's own spawn.
	respawn *gamemath.Vector
}

// NewPlatformerScene starts the configured level from its spawn point.
func NewPlatformerScene(sc SceneChanger, st *status.Status) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, status: st}
}

// newRespawnScene restarts the level at a reset point the player touched.
func newRespawnScene(sc SceneChanger, st *status.Status, at gamemath.Vector) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, status: st, respawn: &at}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.ecs == nil {
		return
	}
	ps.ecs.Update()

	switch {
	case ps.session.Done:
		systems.SaveProgress(ps.status)
		ps.change(NewCompleteScene(ps.sceneChanger, ps.status))
	case ps.session.Player.IsDead():
		if ps.session.Sector.HasResetPoint() {
			ps.change(newRespawnScene(ps.sceneChanger, ps.status, ps.session.Sector.ResetPoint()))
		} else {
			ps.change(NewPlatformerScene(ps.sceneChanger, ps.status))
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// change leaves the level for next.
func (ps *PlatformerScene) change(next interface{}) {
	ps.close()
	ps.sceneChanger.ChangeScene(next)
}

func (ps *PlatformerScene) close() {
	if ps.session == nil {
		return
	}
	if ps.session.ScriptWatcher != nil {
		_ = ps.session.ScriptWatcher.Close()
	}
	if ps.session.TuningWatcher != nil {
		_ = ps.session.TuningWatcher.Close()
	}
}

func (ps *PlatformerScene) configure() {
	// Render sounds up front so the first jump doesn't stall
	systems.PreloadAllSFX()

	lvl, err := assets.NewLevelLoader().LoadLevel(cfg.Debug.Level)
	if err != nil {
		log.Printf("Error: %v", err)
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	s := sector.FromLevel(lvl, ps.status, cfg.Debug.Seed)
	e := ecs.NewECS(s.World())

	p := player.New(s, ps.status, systems.GetOrCreateInput(e).Controller)
	if ps.respawn != nil {
		// Reset points mark the feet position.
		p.Move(gamemath.Vector{X: ps.respawn.X, Y: ps.respawn.Y - p.MoveHeight()})
	} else {
		p.Move(lvl.PlayerSpawn)
	}
	s.SetPlayer(p)

	session := systems.NewSession(e, systems.SessionData{
		Sector: s,
		Player: p,
	})
	if lvl.Script != "" {
		rt, diskPath, err := assets.LoadScript(lvl.Script)
		if err != nil {
			log.Printf("Warning: Could not load script %s: %v", lvl.Script, err)
		} else {
			rt.Bind(p)
			session.Script = rt
			if diskPath != "" {
				if session.ScriptWatcher, err = cfg.NewWatcher(diskPath); err != nil {
					log.Printf("Warning: Could not watch %s: %v", diskPath, err)
				}
			}
		}
	}
	if cfg.Debug.TuningFile != "" {
		if session.TuningWatcher, err = cfg.WatchTuning(cfg.Debug.TuningFile); err != nil {
			log.Printf("Warning: Could not watch %s: %v", cfg.Debug.TuningFile, err)
		}
	}
	s.SetTriggerHandler(func(name string) {
		session.RunTrigger(name)
		if name == "exit" {
			session.StartExit()
		}
	})

	camera := archetypes.Camera.Spawn(e.World)
	components.Camera.SetValue(camera, components.CameraData{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	})
	systems.SnapCamera(e)

	// Audio and input run even when paused
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(systems.PauseActions{
		Restart: func() {
			ps.change(NewPlatformerScene(ps.sceneChanger, ps.status))
		},
		Exit: func() {
			ps.change(NewMenuScene(ps.sceneChanger))
		},
	}))

	e.AddSystem(systems.WithPauseCheck(systems.UpdateTuning))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateScript))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSector))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawHitboxes)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = e
	ps.session = session
}
