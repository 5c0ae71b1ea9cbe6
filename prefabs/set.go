package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Set holds the entity tuning values loaded from entities.yaml. Everything
// gameplay-numeric that isn't fixed by the level or config formats lives
// here: mob speeds and timers, item values, block impulses.
type Set struct {
	Coin struct {
		Value int `yaml:"value"`
	} `yaml:"coin"`

	Mystery struct {
		Drop    string `yaml:"drop"`
		DropMin int    `yaml:"drop_min"`
		DropMax int    `yaml:"drop_max"`
	} `yaml:"mystery"`

	Bounce struct {
		Velocity float64 `yaml:"velocity"`
	} `yaml:"bounce"`

	Cloud struct {
		Tempo     float64 `yaml:"tempo"`
		DropEvery float64 `yaml:"drop_every"`
		Script    string  `yaml:"script"`
	} `yaml:"cloud"`

	Mushroom struct {
		Tempo     float64 `yaml:"tempo"`
		Damage    float64 `yaml:"damage"`
		Knockback float64 `yaml:"knockback"`
	} `yaml:"mushroom"`

	Fireball struct {
		FallSpeed float64 `yaml:"fall_speed"`
		Damage    float64 `yaml:"damage"`
	} `yaml:"fireball"`

	// BounceTempo is the fixed horizontal speed a mob takes after a lateral
	// collision, signed by the contact side.
	BounceTempo float64 `yaml:"bounce_tempo"`

	// StompBounce is the upward velocity the player gets from stomping a mob.
	StompBounce float64 `yaml:"stomp_bounce"`
}

// LoadSet reads entities.yaml (disk override first, then the embedded
// default) and fills in defaults for anything left unset.
func LoadSet() (*Set, error) {
	data, err := Load("entities.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load entities.yaml: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal entities.yaml: %w", err)
	}
	set.applyDefaults()
	return &set, nil
}

func (s *Set) applyDefaults() {
	if s.Coin.Value == 0 {
		s.Coin.Value = 1
	}
	if s.Mystery.Drop == "" {
		s.Mystery.Drop = "coin"
	}
	if s.Mystery.DropMin == 0 {
		s.Mystery.DropMin = 3
	}
	if s.Mystery.DropMax == 0 {
		s.Mystery.DropMax = 6
	}
	if s.Bounce.Velocity == 0 {
		s.Bounce.Velocity = -200
	}
	if s.Cloud.Tempo == 0 {
		s.Cloud.Tempo = 30
	}
	if s.Cloud.DropEvery == 0 {
		s.Cloud.DropEvery = 3
	}
	if s.Mushroom.Tempo == 0 {
		s.Mushroom.Tempo = 45
	}
	if s.Mushroom.Damage == 0 {
		s.Mushroom.Damage = 1
	}
	if s.Mushroom.Knockback == 0 {
		s.Mushroom.Knockback = 100
	}
	if s.Fireball.FallSpeed == 0 {
		s.Fireball.FallSpeed = 120
	}
	if s.Fireball.Damage == 0 {
		s.Fireball.Damage = 3
	}
	if s.BounceTempo == 0 {
		s.BounceTempo = 35
	}
	if s.StompBounce == 0 {
		s.StompBounce = -100
	}
}
