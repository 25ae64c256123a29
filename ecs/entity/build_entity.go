package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
	"github.com/milk9111/aircombat/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"enemy_tag":       addEnemyTag,
	"camera_tag":      addCameraTag,
	"stage_exit_tag":  addStageExitTag,
	"player":          addPlayer,
	"input":           addInput,
	"transform":       addTransform,
	"sprite":          addSprite,
	"render_layer":    addRenderLayer,
	"camera":          addCamera,
	"animation":       addAnimation,
	"collision_layer": addCollisionLayer,
	"physics_body":    addPhysicsBody,
	"label":           addLabel,
}

var componentBuildOrder = []string{
	"player_tag",
	"enemy_tag",
	"camera_tag",
	"stage_exit_tag",
	"player",
	"input",
	"transform",
	"sprite",
	"render_layer",
	"camera",
	"animation",
	"collision_layer",
	"physics_body",
	"label",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, spec, prefabPath)
}

// BuildEntityFromSpec creates one entity from an already parsed prefab. spec
// is only read, so the same spec can be instantiated any number of times.
func BuildEntityFromSpec(w *ecs.World, spec entityPrefabSpec, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addStageExitTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.StageExitTagComponent.Kind(), &component.StageExitTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.Health <= 0 {
		spec.Health = 1
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Speed:  spec.Speed,
		Health: spec.Health,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("sprite needs a positive size, got %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  spec.Width,
		Height: spec.Height,
		Color:  spec.Color.ColorOr(color.White),
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Current: spec.Current,
		Zoom:    spec.Zoom,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.FrameCount <= 0 {
			return fmt.Errorf("animation %q has no frames", name)
		}
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if spec.Current != "" {
		if _, ok := defs[spec.Current]; !ok {
			return fmt.Errorf("animation %q is not defined", spec.Current)
		}
	}

	playing := spec.Playing
	if m, ok := raw.(map[string]any); ok {
		if _, has := m["playing"]; !has {
			playing = spec.Current != ""
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    defs,
		Current: spec.Current,
		Speed:   1,
		Loop:    defs[spec.Current].Loop,
		Playing: playing,
	})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	cat := spec.Category
	mask := spec.Mask
	if cat == 0 {
		cat = 1
	}
	if mask == 0 {
		mask = ^uint32(0)
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: cat, Mask: mask})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}

	width := spec.Width
	height := spec.Height
	if width <= 0 || height <= 0 {
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			width, height = s.Width, s.Height
		}
	}
	if width <= 0 {
		width = 32
	}
	if height <= 0 {
		height = 32
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  width,
		Height: height,
		Sensor: spec.Sensor,
		Static: spec.Static,
	})
}

type labelSpec = prefabs.LabelComponentSpec

func addLabel(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[labelSpec](raw)
	if err != nil {
		return fmt.Errorf("decode label spec: %w", err)
	}
	if spec.Name == "" {
		return fmt.Errorf("label needs a name")
	}
	visible := true
	if spec.Visible != nil {
		visible = *spec.Visible
	}
	if spec.Scale <= 0 {
		spec.Scale = 1
	}
	return ecs.Add(w, e, component.LabelComponent.Kind(), &component.Label{
		Name:    spec.Name,
		Text:    spec.Text,
		Visible: visible,
		X:       spec.X,
		Y:       spec.Y,
		Scale:   spec.Scale,
		Color:   spec.Color.ColorOr(color.White),
	})
}
