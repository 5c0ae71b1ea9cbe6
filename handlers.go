package main

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/pmalloy/plumber/obj"
	"github.com/pmalloy/plumber/scores"
)

// setupCollisionHandlers registers the six category-pair handlers on the
// current world. Called again after every world rebuild.
func (g *Game) setupCollisionHandlers() {
	w := g.world
	w.AddCollisionHandler(obj.CategoryPlayer, obj.CategoryItem, g.handlePlayerCollideItem, nil)
	w.AddCollisionHandler(obj.CategoryPlayer, obj.CategoryBlock, g.handlePlayerCollideBlock, g.handlePlayerSeparateBlock)
	w.AddCollisionHandler(obj.CategoryPlayer, obj.CategoryMob, g.handlePlayerCollideMob, nil)
	w.AddCollisionHandler(obj.CategoryMob, obj.CategoryBlock, g.handleMobCollideBlock, nil)
	w.AddCollisionHandler(obj.CategoryMob, obj.CategoryMob, g.handleMobCollideMob, nil)
	w.AddCollisionHandler(obj.CategoryMob, obj.CategoryItem, g.handleMobCollideItem, nil)
}

// handlePlayerCollideItem applies the pickup and removes the item. Item
// contacts are never solid.
func (g *Game) handlePlayerCollideItem(a, b obj.Thing, _ *cp.Arbiter) bool {
	p := a.(*obj.Player)
	item := b.(*obj.Item)

	item.Collect(p, g.clock.Now())
	g.world.Remove(item)
	return false
}

// handlePlayerCollideBlock routes the hit to the block's own reaction, tracks
// the jumping flag, and resolves goal blocks. Block contacts are always
// solid.
func (g *Game) handlePlayerCollideBlock(a, b obj.Thing, _ *cp.Arbiter) bool {
	p := a.(*obj.Player)
	block := b.(*obj.Block)

	dir := obj.CollisionDirection(p, block)
	block.OnHit(dir, g.world, p)

	if dir == obj.DirAbove {
		p.SetJumping(false)
	}

	switch block.Kind() {
	case obj.BlockFlag:
		if dir == obj.DirAbove {
			p.RestoreHealth()
			if err := scores.Append(g.cfg.ScoresPath(), g.cfg.Character(), p.Score()); err != nil {
				log.Printf("highscores: %v", err)
			}
			g.world.RequestLevel(g.cfg.NextLevel())
		}
	case obj.BlockTunnel:
		if dir == obj.DirAbove && p.Ducking() {
			g.world.RequestLevel(g.cfg.TunnelLevel())
		}
	}
	return true
}

// handlePlayerSeparateBlock marks the player airborne again once it leaves a
// block it was standing on. Walking off a ledge counts the same as a jump for
// the jump gate.
func (g *Game) handlePlayerSeparateBlock(a, b obj.Thing, _ *cp.Arbiter) {
	p := a.(*obj.Player)
	block := b.(*obj.Block)

	if obj.CollisionDirection(p, block) == obj.DirAbove {
		p.SetJumping(true)
	}
}

// handlePlayerCollideMob resolves mob contact: fireballs burn through health
// unless the player is invincible, mushrooms damage and knock back on lateral
// hits, die to a stomp from above, and die to any touch of an invincible
// player. Mob contacts are solid.
func (g *Game) handlePlayerCollideMob(a, b obj.Thing, _ *cp.Arbiter) bool {
	p := a.(*obj.Player)
	mob := b.(*obj.Mob)

	switch mob.Kind() {
	case obj.MobFireball:
		if !p.Invincible() {
			p.ChangeHealth(-g.prefs.Fireball.Damage)
		}
	case obj.MobMushroom:
		if p.Invincible() {
			g.world.Remove(mob)
			break
		}
		switch obj.CollisionDirection(p, mob) {
		case obj.DirLeft:
			p.ChangeHealth(-g.prefs.Mushroom.Damage)
			p.SetVelocity(-g.prefs.Mushroom.Knockback, 0)
			mob.SetTempo(math.Abs(g.prefs.BounceTempo))
		case obj.DirRight:
			p.ChangeHealth(-g.prefs.Mushroom.Damage)
			p.SetVelocity(g.prefs.Mushroom.Knockback, 0)
			mob.SetTempo(-math.Abs(g.prefs.BounceTempo))
		case obj.DirAbove:
			p.SetVelocity(0, g.prefs.StompBounce)
			g.world.Remove(mob)
		}
	}
	return true
}

// handleMobCollideBlock: a fireball takes bricks and itself out; anything
// else bounces off laterally, heading back the way it came.
func (g *Game) handleMobCollideBlock(a, b obj.Thing, _ *cp.Arbiter) bool {
	mob := a.(*obj.Mob)
	block := b.(*obj.Block)

	if mob.Kind() == obj.MobFireball {
		if block.Kind() == obj.BlockBrick {
			g.world.Remove(block)
		}
		g.world.Remove(mob)
		return true
	}

	switch obj.CollisionDirection(mob, block) {
	case obj.DirLeft:
		mob.SetTempo(-math.Abs(g.prefs.BounceTempo))
	case obj.DirRight:
		mob.SetTempo(math.Abs(g.prefs.BounceTempo))
	}
	return true
}

// handleMobCollideMob: fireballs destroy both parties; a mushroom reverses
// both mobs on lateral contact. Mob pairs pass through each other.
func (g *Game) handleMobCollideMob(a, b obj.Thing, _ *cp.Arbiter) bool {
	m1 := a.(*obj.Mob)
	m2 := b.(*obj.Mob)

	if m1.Kind() == obj.MobFireball || m2.Kind() == obj.MobFireball {
		g.world.Remove(m1)
		g.world.Remove(m2)
		return false
	}

	if m1.Kind() == obj.MobMushroom || m2.Kind() == obj.MobMushroom {
		switch obj.CollisionDirection(m1, m2) {
		case obj.DirLeft:
			m1.SetTempo(-math.Abs(g.prefs.BounceTempo))
		case obj.DirRight:
			m1.SetTempo(math.Abs(g.prefs.BounceTempo))
		}
		switch obj.CollisionDirection(m2, m1) {
		case obj.DirLeft:
			m2.SetTempo(-math.Abs(g.prefs.BounceTempo))
		case obj.DirRight:
			m2.SetTempo(math.Abs(g.prefs.BounceTempo))
		}
	}
	return false
}

// handleMobCollideItem: mobs ignore items entirely.
func (g *Game) handleMobCollideItem(_, _ obj.Thing, _ *cp.Arbiter) bool {
	return false
}
