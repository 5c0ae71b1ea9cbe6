package obj

import "github.com/pmalloy/plumber/common"

type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemStar
)

// Item is a dropped pickup sitting in the world. Contact with the player is
// always passthrough; the begin handler applies the effect and removes it.
type Item struct {
	Entity
	kind  ItemKind
	value int
}

func NewCoin(value int) *Item {
	return &Item{
		Entity: newEntity("coin", CategoryItem, common.TileSize, common.TileSize),
		kind:   ItemCoin,
		value:  value,
	}
}

func NewStar() *Item {
	return &Item{
		Entity: newEntity("star", CategoryItem, common.TileSize, common.TileSize),
		kind:   ItemStar,
	}
}

func (it *Item) Kind() ItemKind { return it.kind }

// Collect applies the pickup effect to the player. now is the simulation
// time, used to stamp the invincibility window a star opens.
func (it *Item) Collect(p *Player, now float64) {
	switch it.kind {
	case ItemCoin:
		p.AddScore(it.value)
	case ItemStar:
		p.SetInvincible(now)
	}
}
