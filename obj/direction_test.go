package obj

import "testing"

// placePair builds a fresh world with a 16x16 block at (32, 32) and the
// player at the given top-left pixel position.
func placePair(t *testing.T, px, py float64) (*Player, *Block) {
	t.Helper()
	w := NewWorld(160, 160, 0, NewSimClock())
	b := NewSolid("brick")
	w.AddBlock(b, 32, 32)
	p := NewPlayer(20)
	w.AddPlayer(p, px, py)
	return p, b
}

func TestCollisionDirection(t *testing.T) {
	cases := []struct {
		name string
		px   float64
		py   float64
		want Direction
	}{
		{"landing_from_above", 32, 18, DirAbove},
		{"head_bump_from_below", 32, 46, DirBelow},
		{"push_from_left", 18, 32, DirLeft},
		{"push_from_right", 46, 32, DirRight},
		{"offset_above_still_above", 40, 18, DirAbove},
		// Equal penetration on both axes at a corner counts as vertical.
		{"corner_tie_prefers_vertical", 44, 20, DirAbove},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, b := placePair(t, c.px, c.py)
			if got := CollisionDirection(p, b); got != c.want {
				t.Fatalf("CollisionDirection(player, block) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCollisionDirectionNotSymmetric(t *testing.T) {
	p, b := placePair(t, 32, 18)
	if got := CollisionDirection(p, b); got != DirAbove {
		t.Fatalf("player relative to block = %v, want %v", got, DirAbove)
	}
	if got := CollisionDirection(b, p); got != DirBelow {
		t.Fatalf("block relative to player = %v, want %v", got, DirBelow)
	}
}
