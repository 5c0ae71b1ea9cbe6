package obj

import "github.com/jakecoffman/cp"

// Entity categories. Every shape in the physics space carries one of these as
// its collision type, and collision handlers are registered per category pair.
const (
	CategoryWall cp.CollisionType = iota + 1
	CategoryBlock
	CategoryPlayer
	CategoryItem
	CategoryMob
)

// Thing is implemented by every concrete entity kind (Player, Block, Mob,
// Item, Wall). Embedding Entity is enough to satisfy it.
type Thing interface {
	Base() *Entity
}

// Entity is the shared core of every game object: an identifier tag, a
// category used for collision dispatch, a pixel size, and back-references to
// the physics body and shape the world created for it. The world owns the
// entity; the physics space holds the parallel body keyed back to it through
// the shape's user data.
type Entity struct {
	id       string
	category cp.CollisionType

	width  float64
	height float64

	body  *cp.Body
	shape *cp.Shape
	alive bool
}

func newEntity(id string, category cp.CollisionType, width, height float64) Entity {
	return Entity{
		id:       id,
		category: category,
		width:    width,
		height:   height,
	}
}

func (e *Entity) Base() *Entity { return e }

func (e *Entity) ID() string { return e.id }

func (e *Entity) Category() cp.CollisionType { return e.category }

func (e *Entity) Size() (float64, float64) { return e.width, e.height }

// Alive reports whether the entity is still part of the world. It flips to
// false the moment removal is requested, even though the physics body is only
// detached after the current step finishes.
func (e *Entity) Alive() bool { return e.alive }

// BB returns the entity's axis-aligned bounding box in world pixels. The y
// axis grows downward, so BB.B is the top edge on screen and BB.T the bottom.
func (e *Entity) BB() cp.BB {
	if e.shape == nil {
		return cp.BB{}
	}
	return e.shape.CacheBB()
}

// Position returns the center of the entity's body.
func (e *Entity) Position() cp.Vector {
	if e.body == nil {
		return cp.Vector{}
	}
	return e.body.Position()
}

func (e *Entity) Velocity() cp.Vector {
	if e.body == nil {
		return cp.Vector{}
	}
	return e.body.Velocity()
}

func (e *Entity) SetVelocity(x, y float64) {
	if e.body == nil {
		return
	}
	e.body.SetVelocity(x, y)
}

// Wall is a boundary segment around the playable area. Walls are solid and
// inert; they exist so every shape in the space maps back to a Thing.
type Wall struct {
	Entity
}

func newWall() *Wall {
	return &Wall{Entity: newEntity("wall", CategoryWall, 0, 0)}
}
