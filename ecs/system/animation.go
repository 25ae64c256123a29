package system

import (
	"github.com/milk9111/aircombat/common"
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
)

// AnimationSystem steps playing clips and emits EventAnimationFinished when a
// non-looping clip reaches its last frame in the direction it plays.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		// Advance frame every N ticks based on FPS and the fixed tick rate.
		ticksPerFrame := 1.0
		if def.FPS > 0 {
			ticksPerFrame = float64(common.TPS) / def.FPS
		}
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		speed := anim.Speed
		if speed <= 0 {
			speed = 1
		}

		anim.FrameTimer += speed
		for anim.Playing && anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer -= ticksPerFrame
			if a.step(anim, def) {
				anim.Playing = false
				w.Events().Push(ecs.Event{
					Type: ecs.EventAnimationFinished,
					Data: ecs.AnimationFinishedEvent{Entity: e, Clip: anim.Current},
				})
			}
		}
	})
}

// step advances one frame and reports whether a non-looping clip just ended.
func (a *AnimationSystem) step(anim *component.Animation, def component.AnimationDef) bool {
	if anim.Reverse {
		anim.Frame--
		if anim.Frame >= 0 {
			return false
		}
		if anim.Loop {
			anim.Frame = def.FrameCount - 1
			return false
		}
		anim.Frame = 0
		return true
	}

	anim.Frame++
	if anim.Frame < def.FrameCount {
		return false
	}
	if anim.Loop {
		anim.Frame = 0
		return false
	}
	anim.Frame = def.FrameCount - 1
	return true
}
