package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/prefabs"
	"github.com/milk9111/aircombat/stage"
)

var ErrForeignTemplate = errors.New("entity: template was not loaded by this loader")

// Template is a parsed prefab ready to be instantiated.
type Template struct {
	path string
	spec prefabs.EntityBuildSpec
}

func (t *Template) Path() string {
	return t.path
}

// Loader parses prefabs into templates and builds entities from them.
type Loader struct {
	w *ecs.World
}

func NewLoader(w *ecs.World) *Loader {
	return &Loader{w: w}
}

func (l *Loader) Load(path string) (stage.Template, error) {
	spec, err := prefabs.LoadEntityBuildSpec(path)
	if err != nil {
		return nil, err
	}
	if len(spec.Components) == 0 {
		return nil, fmt.Errorf("prefab %q does not define components", path)
	}
	return &Template{path: path, spec: spec}, nil
}

func (l *Loader) Instantiate(t stage.Template) (ecs.Entity, error) {
	tpl, ok := t.(*Template)
	if !ok || tpl == nil {
		return 0, ErrForeignTemplate
	}
	return BuildEntityFromSpec(l.w, tpl.spec, tpl.path)
}
