package obj

import "github.com/pmalloy/plumber/common"

type MobKind int

const (
	MobCloud MobKind = iota
	MobFireball
	MobMushroom
)

// Mob is a mobile enemy. Its tempo is a signed horizontal cruising speed that
// collision handlers flip on lateral hits; Drive reapplies it before every
// physics step so repeated contacts within one tick never accumulate.
type Mob struct {
	Entity
	kind  MobKind
	tempo float64
	mass  float64

	// Fireball fall speed.
	fallSpeed float64

	// Cloud fireball spawning.
	dropEvery float64
	nextDrop  float64

	brain *Script
}

func NewCloudMob(tempo, dropEvery float64, brain *Script) *Mob {
	return &Mob{
		Entity:    newEntity("cloud", CategoryMob, common.TileSize, common.TileSize),
		kind:      MobCloud,
		tempo:     tempo,
		mass:      1,
		dropEvery: dropEvery,
		brain:     brain,
	}
}

func NewFireball(fallSpeed float64) *Mob {
	return &Mob{
		Entity:    newEntity("fireball", CategoryMob, common.TileSize, common.TileSize),
		kind:      MobFireball,
		mass:      1,
		fallSpeed: fallSpeed,
	}
}

func NewMushroom(tempo float64) *Mob {
	return &Mob{
		Entity: newEntity("mushroom", CategoryMob, common.TileSize, common.TileSize),
		kind:   MobMushroom,
		tempo:  tempo,
		mass:   100,
	}
}

func (m *Mob) Kind() MobKind { return m.kind }

func (m *Mob) Tempo() float64 { return m.tempo }

func (m *Mob) SetTempo(v float64) { m.tempo = v }

// Drive applies the mob's cruising velocity for the next physics step and
// runs any timed behavior (cloud fireball drops). Called once per tick by the
// coordinator, before the physics step.
func (m *Mob) Drive(w *World, now float64) {
	switch m.kind {
	case MobCloud:
		if m.brain != nil {
			m.tempo = m.brain.Tempo(now, m.Position().X, m.tempo)
		}
		m.SetVelocity(m.tempo, 0)
		if m.dropEvery > 0 && now >= m.nextDrop {
			m.nextDrop = now + m.dropEvery
			bb := m.BB()
			w.AddMob(NewFireball(m.fallSpeedOrDefault()), bb.L, bb.T+1)
		}
	case MobFireball:
		m.SetVelocity(0, m.fallSpeed)
	case MobMushroom:
		v := m.Velocity()
		m.SetVelocity(m.tempo, v.Y)
	}
}

func (m *Mob) fallSpeedOrDefault() float64 {
	if m.fallSpeed > 0 {
		return m.fallSpeed
	}
	return 120
}

// SetFireballSpeed tunes the fall speed of the fireballs a cloud drops.
func (m *Mob) SetFireballSpeed(v float64) {
	m.fallSpeed = v
}
