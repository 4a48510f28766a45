package archetypes

import (
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Page = newArchetype(
		components.Page,
		components.Motion,
		components.Input,
	)
	Section = newArchetype(
		tags.Section,
		components.Visual,
	)
	Element = newArchetype(
		tags.Element,
		components.Visual,
	)
	Interactive = newArchetype(
		tags.Interactive,
		components.Visual,
		components.Interactive,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
