package obj

import (
	"math/rand"

	"github.com/pmalloy/plumber/common"
)

type BlockKind int

const (
	BlockBrick BlockKind = iota
	BlockBrickBase
	BlockCube
	BlockSwitch
	BlockMystery
	BlockBounce
	BlockFlag
	BlockTunnel
	BlockUnknown
)

// SwitchCooldown is how long a pressed switch stays inactive, in simulated
// seconds.
const SwitchCooldown = 10.0

// Block is a static level piece. Most kinds are plain solids; Switch and
// Mystery carry an active flag, and Bounce/Flag/Tunnel are stateless triggers
// resolved on directional hits.
type Block struct {
	Entity
	kind BlockKind

	// Switch and Mystery state.
	active    bool
	pressedAt float64

	// Mystery drop configuration.
	drop     string
	dropMin  int
	dropMax  int
	dropped  int
	bounceVY float64
}

func newBlock(id string, kind BlockKind, width, height float64) *Block {
	return &Block{
		Entity: newEntity(id, CategoryBlock, width, height),
		kind:   kind,
		active: true,
	}
}

// NewSolid returns a plain solid block: a brick, brick base, cube, or the
// generic unknown-entity fallback for unmapped level symbols.
func NewSolid(id string) *Block {
	kind := BlockUnknown
	switch id {
	case "brick":
		kind = BlockBrick
	case "brick_base":
		kind = BlockBrickBase
	case "cube":
		kind = BlockCube
	}
	return newBlock(id, kind, common.TileSize, common.TileSize)
}

func NewSwitch() *Block {
	return newBlock("switch", BlockSwitch, common.TileSize, common.TileSize)
}

// NewMysteryBlock returns a one-shot drop block. An empty drop id makes the
// block deactivate on the first strike without spawning anything.
func NewMysteryBlock(drop string, dropMin, dropMax int) *Block {
	b := newBlock("mystery", BlockMystery, common.TileSize, common.TileSize)
	b.drop = drop
	b.dropMin = dropMin
	b.dropMax = dropMax
	return b
}

func NewBounceBlock(bounceVY float64) *Block {
	b := newBlock("bouncyboi", BlockBounce, common.TileSize, common.TileSize)
	b.bounceVY = bounceVY
	return b
}

func NewFlag() *Block {
	return newBlock("flagpole", BlockFlag, 0.2*common.TileSize, 9*common.TileSize)
}

func NewTunnel() *Block {
	return newBlock("tunnel", BlockTunnel, 2*common.TileSize, 2*common.TileSize)
}

func (b *Block) Kind() BlockKind { return b.kind }

// Active reports the switch/mystery state flag. Plain solids are always
// active.
func (b *Block) Active() bool { return b.active }

// Dropped returns how many items this block has spawned.
func (b *Block) Dropped() int { return b.dropped }

// OnHit resolves a directional strike from the player. Switch presses,
// mystery drops and bounce impulses all trigger on a hit from above only.
// Flag and tunnel effects involve level transitions and are resolved by the
// game coordinator's handler, not here.
func (b *Block) OnHit(dir Direction, w *World, p *Player) {
	if dir != DirAbove {
		return
	}
	switch b.kind {
	case BlockSwitch:
		if b.active {
			b.active = false
			b.pressedAt = w.clock.Now()
		}
	case BlockMystery:
		if !b.active {
			return
		}
		b.active = false
		b.spawnDrop(w)
	case BlockBounce:
		// Fixed launch speed regardless of how fast the player came in.
		p.SetVelocity(0, b.bounceVY)
	}
}

func (b *Block) spawnDrop(w *World) {
	if b.drop == "" {
		return
	}
	n := b.dropMin
	if b.dropMax > b.dropMin {
		n += rand.Intn(b.dropMax - b.dropMin + 1)
	}
	bb := b.BB()
	for i := 0; i < n; i++ {
		switch b.drop {
		case "coin":
			w.AddItem(NewCoin(1), bb.L, bb.B-float64(i+1)*common.TileSize)
		case "star":
			w.AddItem(NewStar(), bb.L, bb.B-float64(i+1)*common.TileSize)
		}
		b.dropped++
	}
}

// Tick reactivates a pressed switch once its cooldown has fully elapsed. The
// coordinator polls this every tick, so reactivation lands within one tick of
// the deadline.
func (b *Block) Tick(now float64) {
	if b.kind != BlockSwitch || b.active {
		return
	}
	if now-b.pressedAt >= SwitchCooldown {
		b.active = true
	}
}
