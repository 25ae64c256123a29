package stage

import (
	"errors"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/session"
)

type fakeTemplate struct{ path string }

func (t *fakeTemplate) Path() string { return t.path }

// fakeLoader hands out sequential handles from the arena it is bound to.
type fakeLoader struct {
	arena *fakeArena

	loadErr map[string]error
	// failAt makes the n-th instantiation (1-based) of failPath fail.
	failPath string
	failAt   int

	loads          []string
	instantiations map[string]int
	usedTemplates  []Template
}

func newFakeLoader(arena *fakeArena) *fakeLoader {
	return &fakeLoader{arena: arena, loadErr: map[string]error{}, instantiations: map[string]int{}}
}

func (l *fakeLoader) Load(path string) (Template, error) {
	l.loads = append(l.loads, path)
	if err := l.loadErr[path]; err != nil {
		return nil, err
	}
	return &fakeTemplate{path: path}, nil
}

func (l *fakeLoader) Instantiate(t Template) (ecs.Entity, error) {
	l.usedTemplates = append(l.usedTemplates, t)
	l.instantiations[t.Path()]++
	if t.Path() == l.failPath && l.instantiations[t.Path()] == l.failAt {
		return 0, errors.New("instance failed")
	}
	e := l.arena.alloc()
	if t.Path() == PlayerScene {
		l.arena.players[e] = true
	}
	return e, nil
}

type fakeArena struct {
	next      ecs.Entity
	children  map[ecs.Entity][]ecs.Entity
	positions map[ecs.Entity][2]float64
	speeds    map[ecs.Entity]float64
	players   map[ecs.Entity]bool
	cameras   []ecs.Entity
	current   ecs.Entity
	queued    []ecs.Entity
	removed   []ecs.Entity
	reloads   int
	height    float64
}

func newFakeArena() *fakeArena {
	return &fakeArena{
		children:  map[ecs.Entity][]ecs.Entity{},
		positions: map[ecs.Entity][2]float64{},
		speeds:    map[ecs.Entity]float64{},
		players:   map[ecs.Entity]bool{},
		height:    600,
	}
}

func (a *fakeArena) alloc() ecs.Entity {
	a.next++
	return a.next
}

func (a *fakeArena) Add(parent, child ecs.Entity) {
	a.children[parent] = append(a.children[parent], child)
}

func (a *fakeArena) Remove(e ecs.Entity) {
	for parent, kids := range a.children {
		for i, k := range kids {
			if k == e {
				a.children[parent] = append(kids[:i:i], kids[i+1:]...)
				break
			}
		}
	}
	a.removed = append(a.removed, e)
}

func (a *fakeArena) QueueFree(e ecs.Entity) { a.queued = append(a.queued, e) }

func (a *fakeArena) Children(e ecs.Entity) []ecs.Entity {
	return append([]ecs.Entity(nil), a.children[e]...)
}

func (a *fakeArena) SetPosition(e ecs.Entity, x, y float64) { a.positions[e] = [2]float64{x, y} }

func (a *fakeArena) SetSpeed(e ecs.Entity, speed float64) error {
	if !a.players[e] {
		return errors.New("not a player")
	}
	a.speeds[e] = speed
	return nil
}

func (a *fakeArena) NewCamera(x, y float64) ecs.Entity {
	e := a.alloc()
	a.cameras = append(a.cameras, e)
	a.positions[e] = [2]float64{x, y}
	return e
}

func (a *fakeArena) MakeCurrent(camera ecs.Entity) { a.current = camera }

func (a *fakeArena) ViewportHeight() float64 { return a.height }

func (a *fakeArena) ReloadCurrentScene() { a.reloads++ }

func (a *fakeArena) rootHas(e ecs.Entity) bool {
	for _, k := range a.children[0] {
		if k == e {
			return true
		}
	}
	return false
}

type fakeLabel struct {
	text     string
	visible  bool
	x, y     float64
	setTexts int
}

func (l *fakeLabel) SetText(text string)      { l.text = text; l.setTexts++ }
func (l *fakeLabel) SetVisible(visible bool)  { l.visible = visible }
func (l *fakeLabel) SetPosition(x, y float64) { l.x, l.y = x, y }

type play struct {
	clip    string
	speed   float64
	reverse bool
	loop    bool
}

type fakeAnimator struct{ plays []play }

func (a *fakeAnimator) Play(clip string, speed float64, reverse, loop bool) {
	a.plays = append(a.plays, play{clip, speed, reverse, loop})
}

// seqRandom replays vals in a loop.
type seqRandom struct {
	vals []uint32
	i    int
}

func (r *seqRandom) Uint32() uint32 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type fixture struct {
	arena  *fakeArena
	loader *fakeLoader
	store  *session.Store
	label  *fakeLabel
	kills  *fakeLabel
	intro  *fakeAnimator
	ctrl   *Controller
}

func newFixture(startStage int) *fixture {
	arena := newFakeArena()
	f := &fixture{
		arena:  arena,
		loader: newFakeLoader(arena),
		store:  session.NewStore(startStage),
		label:  &fakeLabel{visible: true},
		kills:  &fakeLabel{},
		intro:  &fakeAnimator{},
	}
	ctrl, err := NewController(Config{
		Loader:     f.loader,
		Arena:      f.arena,
		Sessions:   f.store,
		Random:     NewRandom(7),
		StageLabel: f.label,
		KillsLabel: f.kills,
		Intro:      f.intro,
	})
	if err != nil {
		panic(err)
	}
	f.ctrl = ctrl
	return f
}

// running returns a fixture whose controller has finished its intro.
func running(startStage int) *fixture {
	f := newFixture(startStage)
	if err := f.ctrl.OnReady(); err != nil {
		panic(err)
	}
	if err := f.ctrl.OnIntroFinished(); err != nil {
		panic(err)
	}
	return f
}

func (f *fixture) state() *session.State {
	s, _ := f.store.Load()
	return s
}
