package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
	"github.com/milk9111/aircombat/session"
	"github.com/milk9111/aircombat/stage"
)

func TestArenaHierarchy(t *testing.T) {
	w := ecs.NewWorld()
	a := NewArena(w)

	player := ecs.CreateEntity(w)
	cam := a.NewCamera(360, 0)
	gun := ecs.CreateEntity(w)
	a.Add(player, cam)
	a.Add(player, gun)
	a.Add(0, player)

	if n := len(a.Children(player)); n != 2 {
		t.Fatalf("expected 2 children, got %d", n)
	}

	for _, c := range a.Children(player) {
		a.QueueFree(c)
	}
	a.Remove(player)
	if ecs.IsAlive(w, player) {
		t.Fatalf("removed entity still alive")
	}
	if !ecs.IsAlive(w, cam) {
		t.Fatalf("queued entity freed before end of frame")
	}

	w.Update()
	if ecs.IsAlive(w, cam) || ecs.IsAlive(w, gun) {
		t.Fatalf("queued children survived the frame")
	}
}

func TestArenaSetPosition(t *testing.T) {
	w := ecs.NewWorld()
	a := NewArena(w)
	parent := ecs.CreateEntity(w)
	child := ecs.CreateEntity(w)
	a.SetPosition(parent, 100, 50)
	a.SetPosition(child, 10, 5)
	a.Add(parent, child)

	x, y, ok := ecs.WorldPosition(w, child)
	if !ok || x != 110 || y != 55 {
		t.Fatalf("expected (110, 55), got (%v, %v) ok=%v", x, y, ok)
	}
}

func TestArenaSetSpeed(t *testing.T) {
	w := ecs.NewWorld()
	a := NewArena(w)
	player, err := BuildEntity(w, "player.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.SetSpeed(player, 0); err != nil {
		t.Fatalf("set speed: %v", err)
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	if p.Speed != 0 {
		t.Fatalf("expected speed 0, got %v", p.Speed)
	}

	if err := a.SetSpeed(ecs.CreateEntity(w), 0); !errors.Is(err, ErrNotPlayer) {
		t.Fatalf("expected ErrNotPlayer, got %v", err)
	}
}

func TestArenaCameras(t *testing.T) {
	w := ecs.NewWorld()
	a := NewArena(w)
	first := a.NewCamera(0, 0)
	second := a.NewCamera(10, 0)

	a.MakeCurrent(first)
	a.MakeCurrent(second)
	cur, ok := CurrentCamera(w)
	if !ok || cur != second {
		t.Fatalf("expected %v current, got %v ok=%v", second, cur, ok)
	}
	c, _ := ecs.Get(w, first, component.CameraComponent.Kind())
	if c.Current {
		t.Fatalf("previous camera still current")
	}
}

func TestArenaReload(t *testing.T) {
	w := ecs.NewWorld()
	w.SetViewport(1280, 720)
	a := NewArena(w)
	if a.ViewportHeight() != 720 {
		t.Fatalf("unexpected viewport height %v", a.ViewportHeight())
	}

	if ReloadRequested(w) {
		t.Fatalf("fresh world should not request a reload")
	}
	a.ReloadCurrentScene()
	a.ReloadCurrentScene()
	if !ReloadRequested(w) {
		t.Fatalf("reload not requested")
	}
	if n := len(ecs.Query(w, component.ReloadRequestComponent.Kind().ID())); n != 1 {
		t.Fatalf("expected one reload request, got %d", n)
	}
}

func TestBuildStageScene(t *testing.T) {
	w := ecs.NewWorld()
	scene, err := BuildStageScene(w, "stage.yaml")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if scene.StageLabel == nil || scene.KillsLabel == nil || scene.Intro == nil {
		t.Fatalf("stage scene missing nodes: %+v", scene)
	}
	if !ecs.Has(w, scene.Exit, component.PhysicsBodyComponent.Kind()) {
		t.Fatalf("exit trigger has no body")
	}

	scene.Intro.Play(stage.IntroClip, 1, false, false)
	anim, _ := ecs.Get(w, scene.Intro.Entity(), component.AnimationComponent.Kind())
	if !anim.Playing || anim.Current != stage.IntroClip || anim.Loop {
		t.Fatalf("intro not playing: %+v", anim)
	}

	if _, err := BuildStageScene(w, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing scene")
	}
}

func TestLabelSink(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.LabelComponent.Kind(), &component.Label{Name: "stage", Visible: true})

	if _, ok := FindLabel(w, "kills"); ok {
		t.Fatalf("found a label that does not exist")
	}
	sink, ok := FindLabel(w, "stage")
	if !ok {
		t.Fatalf("label not found")
	}
	sink.SetText("Game Over")
	sink.SetVisible(false)
	sink.SetPosition(440, 360)

	l, _ := ecs.Get(w, e, component.LabelComponent.Kind())
	if l.Text != "Game Over" || l.Visible || l.X != 440 || l.Y != 360 {
		t.Fatalf("unexpected label %+v", l)
	}

	ecs.DestroyEntity(w, e)
	sink.SetText("ignored")
}

func TestAnimationPlayerReverse(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs: map[string]component.AnimationDef{"spin": {Name: "spin", FrameCount: 8, FPS: 10}},
	})
	p := NewAnimationPlayer(w, e)
	p.Play("spin", 2, true, true)
	p.Play("unknown", 1, false, false)

	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Current != "spin" || anim.Frame != 7 || anim.Speed != 2 || !anim.Reverse || !anim.Loop {
		t.Fatalf("unexpected animation state %+v", anim)
	}
}

// The controller driven through the ECS adapters, as the stage system wires it.
func TestControllerOnWorld(t *testing.T) {
	w := ecs.NewWorld()
	w.SetViewport(1280, 720)
	scene, err := BuildStageScene(w, "stage.yaml")
	if err != nil {
		t.Fatal(err)
	}
	store := session.NewStore(1)
	ctrl, err := stage.NewController(scene.ControllerConfig(w, store, stage.NewRandom(3)))
	if err != nil {
		t.Fatal(err)
	}

	if err := ctrl.OnReady(); err != nil {
		t.Fatalf("ready: %v", err)
	}
	stageLabel, _ := ecs.Get(w, scene.StageLabel.Entity(), component.LabelComponent.Kind())
	if stageLabel.Text != "Stage 1" {
		t.Fatalf("unexpected banner %q", stageLabel.Text)
	}

	if err := ctrl.OnIntroFinished(); err != nil {
		t.Fatalf("intro finished: %v", err)
	}
	player, ok := ctrl.Player()
	if !ok || !ecs.Has(w, player, component.PlayerTagComponent.Kind()) {
		t.Fatalf("player not spawned")
	}
	cam, ok := CurrentCamera(w)
	if !ok {
		t.Fatalf("no current camera")
	}
	if parent, ok := ecs.ParentOf(w, cam); !ok || parent != player {
		t.Fatalf("camera not attached to the player")
	}
	if n := len(ecs.Query(w, component.EnemyTagComponent.Kind().ID())); n != 12 {
		t.Fatalf("expected 12 enemies, got %d", n)
	}

	if err := ctrl.OnCollision(stage.StageExitMask); err != nil {
		t.Fatalf("collision: %v", err)
	}
	if !ReloadRequested(w) {
		t.Fatalf("stage exit did not request a reload")
	}
	state, _ := store.Load()
	if state.CurrentStage() != 2 {
		t.Fatalf("expected stage 2, got %d", state.CurrentStage())
	}

	ctrl.OnPlayerDied()
	w.Update()
	if ecs.IsAlive(w, player) || ecs.IsAlive(w, cam) {
		t.Fatalf("player subtree survived death")
	}
	stageLabel, _ = ecs.Get(w, scene.StageLabel.Entity(), component.LabelComponent.Kind())
	if stageLabel.Text != stage.GameOverText || !stageLabel.Visible {
		t.Fatalf("unexpected banner after death %+v", stageLabel)
	}
}

func TestControllerWithoutSceneNodes(t *testing.T) {
	w := ecs.NewWorld()
	w.SetViewport(1280, 720)
	scene := &StageScene{}

	cfg := scene.ControllerConfig(w, session.NewStore(1), stage.NewRandom(5))
	if cfg.StageLabel != nil || cfg.KillsLabel != nil || cfg.Intro != nil {
		t.Fatalf("missing nodes wired as non-nil ports: %+v", cfg)
	}
	if e := scene.IntroEntity(); e.Valid() {
		t.Fatalf("expected no intro entity, got %v", e)
	}

	ctrl, err := stage.NewController(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctrl.OnReady(); err != nil {
		t.Fatalf("ready: %v", err)
	}
	ctrl.OnTick()
	if err := ctrl.OnIntroFinished(); err != nil {
		t.Fatalf("intro finished: %v", err)
	}
	if ctrl.Phase() != stage.Running {
		t.Fatalf("expected running, got %s", ctrl.Phase())
	}
	ctrl.OnPlayerDied()
	if ctrl.Phase() != stage.GameOver {
		t.Fatalf("expected game over, got %s", ctrl.Phase())
	}
	if _, ok := ctrl.Player(); ok {
		t.Fatalf("player handle kept after death")
	}
}

func TestDefaultCamera(t *testing.T) {
	w := ecs.NewWorld()
	cam, err := newDefaultCamera(w, 360, 0)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := ecs.Get(w, cam, component.CameraComponent.Kind())
	if !ok || c.Zoom != 1 {
		t.Fatalf("expected a zoom 1 camera, got %+v", c)
	}
	if x, y, _ := ecs.WorldPosition(w, cam); x != 360 || y != 0 {
		t.Fatalf("expected (360, 0), got (%v, %v)", x, y)
	}

	if _, err := newDefaultCamera(nil, 0, 0); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}
