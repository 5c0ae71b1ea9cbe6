package obj

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// BeginHandler runs once when two entities of the registered category pair
// start touching. Returning true makes the physics engine treat the contact
// as solid; returning false records the contact but lets the bodies pass
// through each other.
type BeginHandler func(a, b Thing, arb *cp.Arbiter) bool

// SeparateHandler runs once when two previously touching entities stop
// touching.
type SeparateHandler func(a, b Thing, arb *cp.Arbiter)

// World owns all live entities, the physics space that simulates them, and
// the collision handlers that turn raw contacts into game effects. Every live
// entity has exactly one body in the space; removing the entity detaches the
// body with it, deferred past the end of the step when the space is locked.
type World struct {
	space *cp.Space
	clock Clock

	player  *Player
	things  []Thing
	byShape map[*cp.Shape]Thing

	pixelW float64
	pixelH float64

	// inStep is true while space.Step runs; entity adds and removals
	// requested by collision handlers during that window are deferred to
	// post-step callbacks.
	inStep bool

	pendingLevel string
	hasPending   bool
}

func NewWorld(pixelW, pixelH, gravity float64, clock Clock) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	w := &World{
		space:   space,
		clock:   clock,
		byShape: map[*cp.Shape]Thing{},
		pixelW:  pixelW,
		pixelH:  pixelH,
	}
	w.addBounds()
	return w
}

func (w *World) Space() *cp.Space { return w.space }

func (w *World) Clock() Clock { return w.clock }

func (w *World) PixelSize() (float64, float64) { return w.pixelW, w.pixelH }

// addBounds walls off the playable area with static segments.
func (w *World) addBounds() {
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w.pixelW, Y: 0}},
		{a: cp.Vector{X: 0, Y: w.pixelH}, b: cp.Vector{X: w.pixelW, Y: w.pixelH}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: w.pixelH}},
		{a: cp.Vector{X: w.pixelW, Y: 0}, b: cp.Vector{X: w.pixelW, Y: w.pixelH}},
	}
	for _, seg := range segments {
		wall := newWall()
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(CategoryWall)
		wall.body = w.space.StaticBody
		wall.shape = shape
		wall.alive = true
		w.space.AddShape(shape)
		w.byShape[shape] = wall
		w.things = append(w.things, wall)
	}
}

// attach finishes wiring an entity into the world: position, back-references
// and the shape-to-thing index the dispatcher relies on. x, y is the top-left
// corner in world pixels, matching level grid placement.
func (w *World) attach(t Thing, body *cp.Body, shape *cp.Shape, x, y float64) {
	e := t.Base()
	body.SetPosition(cp.Vector{X: x + e.width/2, Y: y + e.height/2})
	e.body = body
	e.shape = shape
	e.alive = true

	w.whenUnlocked(t, func() {
		w.space.AddBody(body)
		w.space.AddShape(shape)
	})
	w.byShape[shape] = t
	w.things = append(w.things, t)
}

// AddPlayer inserts the player at top-left pixel (x, y). The player keeps its
// health and score across worlds; only the physics body is fresh.
func (w *World) AddPlayer(p *Player, x, y float64) {
	if w.player != nil {
		panic("obj: world already has a player")
	}
	body := cp.NewBody(1, cp.INFINITY)
	shape := cp.NewBox(body, p.width, p.height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(CategoryPlayer)
	w.attach(p, body, shape, x, y)
	w.player = p
}

func (w *World) AddBlock(b *Block, x, y float64) {
	body := cp.NewStaticBody()
	shape := cp.NewBox(body, b.width, b.height, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(CategoryBlock)
	w.attach(b, body, shape, x, y)
}

func (w *World) AddItem(it *Item, x, y float64) {
	body := cp.NewStaticBody()
	shape := cp.NewBox(body, it.width, it.height, 0)
	shape.SetCollisionType(CategoryItem)
	w.attach(it, body, shape, x, y)
}

func (w *World) AddMob(m *Mob, x, y float64) {
	body := cp.NewBody(m.mass, cp.INFINITY)
	if m.kind != MobMushroom {
		// Clouds hover and fireballs fall at a fixed speed; neither is
		// integrated under gravity.
		body.SetVelocityUpdateFunc(func(_ *cp.Body, _ cp.Vector, _, _ float64) {})
	}
	shape := cp.NewBox(body, m.width, m.height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(CategoryMob)
	w.attach(m, body, shape, x, y)
}

// Remove takes an entity out of the world. The liveness flag drops
// immediately so handlers running later in the same step can skip it; the
// physics body and shape are detached right away when the space is idle, or
// in a post-step callback when removal happens inside a collision handler.
func (w *World) Remove(t Thing) {
	e := t.Base()
	if !e.alive {
		return
	}
	e.alive = false
	w.whenUnlocked(t, func() {
		w.detach(t)
	})
}

func (w *World) detach(t Thing) {
	e := t.Base()
	if e.shape != nil {
		w.space.RemoveShape(e.shape)
		delete(w.byShape, e.shape)
	}
	if e.body != nil && e.body != w.space.StaticBody {
		w.space.RemoveBody(e.body)
	}
	for i, other := range w.things {
		if other == t {
			w.things = append(w.things[:i], w.things[i+1:]...)
			break
		}
	}
	if t == Thing(w.player) {
		w.player = nil
	}
}

// whenUnlocked runs f now, or after the current physics step when a step is
// in progress. The key dedupes repeated requests for the same entity within
// one step.
func (w *World) whenUnlocked(key Thing, f func()) {
	if !w.inStep {
		f()
		return
	}
	w.space.AddPostStepCallback(func(_ *cp.Space, _ interface{}, _ interface{}) {
		f()
	}, key, nil)
}

// AddCollisionHandler registers begin/separate callbacks for an unordered
// category pair. The wrapped callbacks always receive the entities ordered so
// that a carries catA, regardless of which shape the engine reports first,
// and a begin fires at most once per contact per step. Begins against an
// entity already removed earlier in the same step are swallowed as
// passthrough; a shape with no entity mapping is a programming error.
func (w *World) AddCollisionHandler(catA, catB cp.CollisionType, onBegin BeginHandler, onSeparate SeparateHandler) {
	handler := w.space.NewCollisionHandler(catA, catB)
	if onBegin != nil {
		handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			a, b := w.lookupPair(arb, catA)
			if !a.Base().alive || !b.Base().alive {
				return false
			}
			return onBegin(a, b, arb)
		}
	}
	if onSeparate != nil {
		handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
			a, b := w.lookupPair(arb, catA)
			if !a.Base().alive || !b.Base().alive {
				return
			}
			onSeparate(a, b, arb)
		}
	}
}

func (w *World) lookupPair(arb *cp.Arbiter, catA cp.CollisionType) (Thing, Thing) {
	sa, sb := arb.Shapes()
	a, okA := w.byShape[sa]
	b, okB := w.byShape[sb]
	if !okA || !okB {
		panic(fmt.Sprintf("obj: contact involves a shape with no entity (a=%v b=%v)", okA, okB))
	}
	if a.Base().category != catA {
		a, b = b, a
	}
	return a, b
}

// Step advances the physics simulation by the fixed timestep. Collision
// handlers fire inside this call; deferred removals run before it returns.
func (w *World) Step(dt float64) {
	w.inStep = true
	w.space.Step(dt)
	w.inStep = false
}

func (w *World) Player() *Player { return w.player }

// Things returns every live entity, walls included.
func (w *World) Things() []Thing {
	out := make([]Thing, 0, len(w.things))
	for _, t := range w.things {
		if t.Base().alive {
			out = append(out, t)
		}
	}
	return out
}

func (w *World) Blocks() []*Block {
	var out []*Block
	for _, t := range w.things {
		if b, ok := t.(*Block); ok && b.alive {
			out = append(out, b)
		}
	}
	return out
}

func (w *World) Mobs() []*Mob {
	var out []*Mob
	for _, t := range w.things {
		if m, ok := t.(*Mob); ok && m.alive {
			out = append(out, m)
		}
	}
	return out
}

func (w *World) Items() []*Item {
	var out []*Item
	for _, t := range w.things {
		if it, ok := t.(*Item); ok && it.alive {
			out = append(out, it)
		}
	}
	return out
}

// RequestLevel records a level transition for the coordinator to apply after
// the current step. Handlers must not rebuild the world mid-dispatch; the
// first request in a tick wins.
func (w *World) RequestLevel(path string) {
	if w.hasPending {
		return
	}
	w.pendingLevel = path
	w.hasPending = true
}

func (w *World) PendingLevel() (string, bool) {
	return w.pendingLevel, w.hasPending
}
