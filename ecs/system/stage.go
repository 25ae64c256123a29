package system

import (
	"log"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/stage"
)

// StageSystem drives a stage.Controller from the world: it readies the
// controller on its first frame, forwards this frame's events and ticks it.
// Errors from the controller cannot be recovered from inside a frame and
// panic.
type StageSystem struct {
	ctrl  *stage.Controller
	intro ecs.Entity
	ready bool
	phase stage.Phase
}

// NewStageSystem routes the end of intro's stage.IntroClip to the controller.
// With a zero intro the stage starts on the first frame.
func NewStageSystem(ctrl *stage.Controller, intro ecs.Entity) *StageSystem {
	return &StageSystem{ctrl: ctrl, intro: intro, phase: ctrl.Phase()}
}

func (s *StageSystem) Controller() *stage.Controller {
	if s == nil {
		return nil
	}
	return s.ctrl
}

func (s *StageSystem) Update(w *ecs.World) {
	if s == nil || s.ctrl == nil || w == nil {
		return
	}

	if !s.ready {
		s.ready = true
		if err := s.ctrl.OnReady(); err != nil {
			panic("stage system: ready: " + err.Error())
		}
		if !s.intro.Valid() {
			if err := s.ctrl.OnIntroFinished(); err != nil {
				panic("stage system: start stage: " + err.Error())
			}
		}
	}

	for _, evt := range w.Events().Pending() {
		switch evt.Type {
		case ecs.EventAnimationFinished:
			done, ok := evt.Data.(ecs.AnimationFinishedEvent)
			if !ok || done.Entity != s.intro || done.Clip != stage.IntroClip {
				continue
			}
			if err := s.ctrl.OnIntroFinished(); err != nil {
				panic("stage system: start stage: " + err.Error())
			}
		case ecs.EventCollisionEntered:
			c, ok := evt.Data.(ecs.CollisionEvent)
			if !ok {
				continue
			}
			if player, held := s.ctrl.Player(); !held || player != c.Entity {
				continue
			}
			if err := s.ctrl.OnCollision(c.Layers); err != nil {
				panic("stage system: collision: " + err.Error())
			}
		case ecs.EventPlayerDied:
			s.ctrl.OnPlayerDied()
		}
	}

	s.ctrl.OnTick()

	if p := s.ctrl.Phase(); p != s.phase {
		log.Printf("stage: %s -> %s", s.phase, p)
		s.phase = p
	}
}
