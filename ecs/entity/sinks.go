package entity

import (
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
)

// LabelSink writes to the Label component of one entity. Writes after the
// entity is gone are dropped.
type LabelSink struct {
	w *ecs.World
	e ecs.Entity
}

// FindLabel returns a sink for the label with the given name.
func FindLabel(w *ecs.World, name string) (*LabelSink, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.LabelComponent.Kind(), func(e ecs.Entity, l *component.Label) {
		if l.Name == name && !found.Valid() {
			found = e
		}
	})
	if !found.Valid() {
		return nil, false
	}
	return &LabelSink{w: w, e: found}, true
}

func (s *LabelSink) Entity() ecs.Entity {
	return s.e
}

func (s *LabelSink) SetText(text string) {
	if l, ok := s.label(); ok {
		l.Text = text
	}
}

func (s *LabelSink) SetVisible(visible bool) {
	if l, ok := s.label(); ok {
		l.Visible = visible
	}
}

func (s *LabelSink) SetPosition(x, y float64) {
	if l, ok := s.label(); ok {
		l.X = x
		l.Y = y
	}
}

func (s *LabelSink) label() (*component.Label, bool) {
	return ecs.Get(s.w, s.e, component.LabelComponent.Kind())
}

// AnimationPlayer starts clips on one entity's Animation component.
type AnimationPlayer struct {
	w *ecs.World
	e ecs.Entity
}

func NewAnimationPlayer(w *ecs.World, e ecs.Entity) *AnimationPlayer {
	return &AnimationPlayer{w: w, e: e}
}

func (p *AnimationPlayer) Entity() ecs.Entity {
	return p.e
}

// Play restarts clip from its first frame, or from its last when reverse is
// set. Unknown clips are ignored.
func (p *AnimationPlayer) Play(clip string, speed float64, reverse, loop bool) {
	anim, ok := ecs.Get(p.w, p.e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	def, ok := anim.Defs[clip]
	if !ok {
		return
	}
	anim.Current = clip
	anim.Speed = speed
	anim.Reverse = reverse
	anim.Loop = loop
	anim.FrameTimer = 0
	anim.Frame = 0
	if reverse {
		anim.Frame = def.FrameCount - 1
	}
	anim.Playing = true
}
