package stage

import (
	"fmt"
	"math"

	"github.com/milk9111/aircombat/ecs"
)

const (
	// WaveBaseSize is the number of enemies on top of the stage number.
	WaveBaseSize = 11
	// SpawnMinX is the left edge of the spawn band, right of the visible
	// play-field.
	SpawnMinX = 700
	// SpawnRangeX is the width of the spawn band.
	SpawnRangeX = 5000
)

// Placement is where one enemy of a wave enters the arena.
type Placement struct {
	X float64
	Y float64
}

// WaveSize returns how many enemies stage spawns: 11 + stage, so stage 1
// yields 12.
func WaveSize(stage int) int {
	n := WaveBaseSize + stage
	if n < 0 {
		return 0
	}
	return n
}

// PlaceWave draws the placements for a stage. Each placement takes two draws
// from rng, x first:
//
//	x = 700 + (r mod 5000)
//	y = r mod viewportHeight
//
// y is the remainder of an unbounded draw rather than a uniform draw in
// [0, viewportHeight), so it leans towards low values whenever the height does
// not divide 2^32. A non-positive viewportHeight places every enemy at y = 0.
func PlaceWave(stage int, viewportHeight float64, rng RandomSource) []Placement {
	n := WaveSize(stage)
	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		x := float64(SpawnMinX + rng.Uint32()%SpawnRangeX)
		r := rng.Uint32()
		y := 0.0
		if viewportHeight > 0 {
			y = math.Mod(float64(r), viewportHeight)
		}
		out = append(out, Placement{X: x, Y: y})
	}
	return out
}

// Spawner instantiates waves from a single shared enemy template. The template
// is taken out for the duration of each instantiation and put back afterwards,
// so at most one instantiation ever holds it.
type Spawner struct {
	loader   SceneLoader
	arena    Arena
	rng      RandomSource
	template Template
}

func NewSpawner(loader SceneLoader, arena Arena, rng RandomSource, template Template) *Spawner {
	return &Spawner{
		loader:   loader,
		arena:    arena,
		rng:      rng,
		template: template,
	}
}

// SpawnWave places and inserts every enemy of stage into the arena. The first
// failed instantiation aborts the wave; enemies already inserted stay.
func (s *Spawner) SpawnWave(stage int, viewportHeight float64) ([]ecs.Entity, error) {
	placements := PlaceWave(stage, viewportHeight, s.rng)
	out := make([]ecs.Entity, 0, len(placements))
	for i, p := range placements {
		e, err := s.spawn(p)
		if err != nil {
			return out, fmt.Errorf("enemy %d of %d: %w", i+1, len(placements), err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Spawner) spawn(p Placement) (ecs.Entity, error) {
	template := s.template
	if template == nil {
		return 0, ErrTemplateInUse
	}
	s.template = nil
	defer func() { s.template = template }()

	e, err := s.loader.Instantiate(template)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEnemySpawn, err)
	}
	s.arena.SetPosition(e, p.X, p.Y)
	s.arena.Add(0, e)
	return e, nil
}
