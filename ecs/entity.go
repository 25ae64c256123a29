package ecs

import "fmt"

// Entity is a generational handle into a World. The low half is the slot id,
// the high half the slot's generation when the handle was issued, so a handle
// kept past DestroyEntity never resolves to the slot's next occupant.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID { return entityID(e & 0xffffffff) }

func (e Entity) generation() generation { return generation(e >> 32) }

// String renders the handle as id@generation.
func (e Entity) String() string {
	return fmt.Sprintf("%d@%d", e.id(), e.generation())
}

// Valid reports whether e is a non-zero handle, not whether it is alive.
func (e Entity) Valid() bool {
	return e != 0
}
