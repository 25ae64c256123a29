package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/aircombat/common"
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/entity"
	"github.com/milk9111/aircombat/ecs/system"
	"github.com/milk9111/aircombat/prefabs"
	"github.com/milk9111/aircombat/session"
	"github.com/milk9111/aircombat/stage"
)

const stageScenePath = "stage.yaml"

type Game struct {
	frames int
	debug  bool

	seed       int64
	builds     int64
	startStage int

	sessions *session.Store
	world    *ecs.World
	stage    *system.StageSystem
	camera   *system.CameraSystem
	render   *system.RenderSystem

	watcher *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
	quit    bool
}

func NewGame(startStage int, seed int64, debug, watch bool) *Game {
	g := &Game{
		debug:      debug,
		seed:       seed,
		startStage: startStage,
		sessions:   session.NewStore(startStage),
	}
	log.Printf("stage: session %s entering stage %d", g.sessions.ID(), startStage)

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.buildWorld(); err != nil {
		log.Fatalf("build stage: %v", err)
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// buildWorld creates a fresh world for the current session. Each build draws
// from a new random stream so consecutive stages get different waves.
func (g *Game) buildWorld() error {
	w := ecs.NewWorld()
	w.SetViewport(common.BaseWidth, common.BaseHeight)

	scene, err := entity.BuildStageScene(w, stageScenePath)
	if err != nil {
		return err
	}

	ctrl, err := stage.NewController(scene.ControllerConfig(w, g.sessions, stage.NewRandom(g.seed+g.builds)))
	if err != nil {
		return err
	}
	g.builds++

	g.stage = system.NewStageSystem(ctrl, scene.IntroEntity())
	g.camera = system.NewCameraSystem()
	g.render = system.NewRenderSystem(g.camera)

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewPlayerMovementSystem())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewContactSystem(g.sessions))
	w.AddSystem(system.NewAnimationSystem())
	w.AddSystem(g.stage)
	w.AddSystem(g.camera)

	g.world = w
	return nil
}

func (g *Game) reload(reason string) {
	if state, ok := g.sessions.Load(); ok {
		log.Printf("stage: session %s entering stage %d (%s)", g.sessions.ID(), state.CurrentStage(), reason)
	}
	if err := g.buildWorld(); err != nil {
		log.Fatalf("reload stage: %v", err)
	}
}

// NewSession discards the current session and restarts from the configured
// starting stage.
func (g *Game) NewSession() {
	g.sessions.Begin(g.startStage)
	g.paused = false
	g.reload("new game")
}

func (g *Game) Update() error {
	if g.quit {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.stage.Controller().Phase() == stage.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.NewSession()
		return nil
	}

	g.pollWatcher()
	g.world.Update()

	if entity.ReloadRequested(g.world) {
		g.reload("stage clear")
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := ""
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = name
			continue
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watch: %v", err)
			}
			continue
		default:
		}
		break
	}
	if changed != "" {
		g.reload("prefab changed: " + changed)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		phase := g.stage.Controller().Phase()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Phase: %s", g.frames, ebiten.ActualFPS(), phase))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
