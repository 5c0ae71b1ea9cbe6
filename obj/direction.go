package obj

import "math"

// Direction classifies which face of an entity a contact happened on.
type Direction int

const (
	DirAbove Direction = iota
	DirBelow
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirAbove:
		return "above"
	case DirBelow:
		return "below"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// CollisionDirection reports where a sits relative to b at the moment of
// contact: DirAbove means a struck b's top face (a player landing on a block,
// or stomping a mob), DirLeft means a engaged b's left face, and so on.
//
// The axis with the smaller bounding-box penetration is the contact axis; the
// sign of the relative center position along that axis picks the face. When
// the penetrations are equal at a corner the vertical axis wins, so a corner
// graze counts as a landing rather than a side hit. The result is computed
// from the two boxes alone, so CollisionDirection(a, b) is not the mirror of
// CollisionDirection(b, a); callers that need both sides invoke it twice.
func CollisionDirection(a, b Thing) Direction {
	abb := a.Base().BB()
	bbb := b.Base().BB()

	overlapX := math.Min(abb.R, bbb.R) - math.Max(abb.L, bbb.L)
	overlapY := math.Min(abb.T, bbb.T) - math.Max(abb.B, bbb.B)

	ac := abb.Center()
	bc := bbb.Center()

	// y grows downward: a smaller center y means a is higher on screen.
	if overlapY <= overlapX {
		if ac.Y < bc.Y {
			return DirAbove
		}
		return DirBelow
	}
	if ac.X < bc.X {
		return DirLeft
	}
	return DirRight
}
