package entity

import (
	"fmt"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
	"github.com/milk9111/aircombat/prefabs"
	"github.com/milk9111/aircombat/stage"
)

const (
	StageLabelName = "stage"
	KillsLabelName = "kills"
	IntroName      = "intro"
)

// StageScene is what the stage prefab provides to the stage controller. Any of
// the sinks may be nil when the prefab leaves that node out.
type StageScene struct {
	StageLabel *LabelSink
	KillsLabel *LabelSink
	Intro      *AnimationPlayer
	Exit       ecs.Entity
}

// BuildStageScene builds every entity listed in the scene prefab.
func BuildStageScene(w *ecs.World, scenePath string) (*StageScene, error) {
	spec, err := prefabs.LoadSceneSpec(scenePath)
	if err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}

	scene := &StageScene{}
	for _, ent := range spec.Entities {
		e, err := BuildEntityFromSpec(w, ent, scenePath+"#"+ent.Name)
		if err != nil {
			return nil, fmt.Errorf("stage scene: %w", err)
		}
		if ent.Name == IntroName && ecs.Has(w, e, component.AnimationComponent.Kind()) {
			scene.Intro = NewAnimationPlayer(w, e)
		}
		if ecs.Has(w, e, component.StageExitTagComponent.Kind()) {
			scene.Exit = e
		}
	}

	if l, ok := FindLabel(w, StageLabelName); ok {
		scene.StageLabel = l
	}
	if l, ok := FindLabel(w, KillsLabelName); ok {
		scene.KillsLabel = l
	}
	return scene, nil
}

// ControllerConfig wires a stage.Controller to w and to the nodes this scene
// provides. A node the scene left out stays a nil interface so the controller
// skips it.
func (s *StageScene) ControllerConfig(w *ecs.World, sessions stage.SessionStore, rng stage.RandomSource) stage.Config {
	cfg := stage.Config{
		Loader:   NewLoader(w),
		Arena:    NewArena(w),
		Sessions: sessions,
		Random:   rng,
	}
	if s == nil {
		return cfg
	}
	if s.StageLabel != nil {
		cfg.StageLabel = s.StageLabel
	}
	if s.KillsLabel != nil {
		cfg.KillsLabel = s.KillsLabel
	}
	if s.Intro != nil {
		cfg.Intro = s.Intro
	}
	return cfg
}

// IntroEntity is the entity playing the intro clip, or zero without one.
func (s *StageScene) IntroEntity() ecs.Entity {
	if s == nil || s.Intro == nil {
		return 0
	}
	return s.Intro.Entity()
}
