package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
)

const testDT = 1.0 / 60.0

func TestBeginFiresOncePerContact(t *testing.T) {
	w := NewWorld(320, 320, 0, NewSimClock())
	p := NewPlayer(20)
	w.AddPlayer(p, 32, 32)
	coin := NewCoin(1)
	w.AddItem(coin, 40, 32) // overlapping the player

	begins := 0
	w.AddCollisionHandler(CategoryPlayer, CategoryItem, func(a, b Thing, _ *cp.Arbiter) bool {
		begins++
		if _, ok := a.(*Player); !ok {
			t.Fatalf("first argument should be the player, got %T", a)
		}
		if _, ok := b.(*Item); !ok {
			t.Fatalf("second argument should be the item, got %T", b)
		}
		return false
	}, nil)

	w.Step(testDT)
	if begins != 1 {
		t.Fatalf("expected 1 begin after first step, got %d", begins)
	}

	// Still touching: no new begin while the contact persists.
	for i := 0; i < 5; i++ {
		w.Step(testDT)
	}
	if begins != 1 {
		t.Fatalf("expected begin to stay at 1 while touching, got %d", begins)
	}
}

func TestPassthroughRemovalDuringHandler(t *testing.T) {
	w := NewWorld(320, 320, 0, NewSimClock())
	p := NewPlayer(20)
	w.AddPlayer(p, 32, 32)
	coin := NewCoin(1)
	w.AddItem(coin, 40, 32)

	w.AddCollisionHandler(CategoryPlayer, CategoryItem, func(a, b Thing, _ *cp.Arbiter) bool {
		w.Remove(b)
		return false
	}, nil)

	w.Step(testDT)

	if coin.Alive() {
		t.Fatalf("coin should be removed after pickup")
	}
	if got := len(w.Items()); got != 0 {
		t.Fatalf("expected no items left, got %d", got)
	}
	// The space must be clean: stepping again must not touch the removed body.
	w.Step(testDT)
}

func TestRemoveBothPartiesMidStep(t *testing.T) {
	w := NewWorld(320, 320, 0, NewSimClock())
	fireball := NewFireball(120)
	w.AddMob(fireball, 32, 32)
	mushroom := NewMushroom(45)
	w.AddMob(mushroom, 40, 32)

	w.AddCollisionHandler(CategoryMob, CategoryMob, func(a, b Thing, _ *cp.Arbiter) bool {
		w.Remove(a)
		w.Remove(b)
		return false
	}, nil)

	w.Step(testDT)

	if fireball.Alive() || mushroom.Alive() {
		t.Fatalf("both mobs should be removed, fireball=%v mushroom=%v", fireball.Alive(), mushroom.Alive())
	}
	if got := len(w.Mobs()); got != 0 {
		t.Fatalf("expected no mobs left, got %d", got)
	}
	w.Step(testDT)
}

func TestSeparateFiresOnceOnLeaving(t *testing.T) {
	w := NewWorld(320, 320, 0, NewSimClock())
	b := NewSolid("brick")
	w.AddBlock(b, 32, 48)
	p := NewPlayer(20)
	w.AddPlayer(p, 32, 33) // resting on the block, 1px overlap

	separations := 0
	w.AddCollisionHandler(CategoryPlayer, CategoryBlock,
		func(a, bl Thing, _ *cp.Arbiter) bool { return true },
		func(a, bl Thing, _ *cp.Arbiter) {
			separations++
		})

	w.Step(testDT)

	// Fly up and away.
	p.SetVelocity(0, -200)
	for i := 0; i < 30; i++ {
		w.Step(testDT)
	}

	if separations != 1 {
		t.Fatalf("expected exactly 1 separation, got %d", separations)
	}
}

func TestRemoveOutsideStepIsImmediate(t *testing.T) {
	w := NewWorld(320, 320, 0, NewSimClock())
	coin := NewCoin(1)
	w.AddItem(coin, 32, 32)

	if got := len(w.Items()); got != 1 {
		t.Fatalf("expected 1 item, got %d", got)
	}
	w.Remove(coin)
	if coin.Alive() {
		t.Fatalf("coin should be dead immediately")
	}
	if got := len(w.Items()); got != 0 {
		t.Fatalf("expected no items after removal, got %d", got)
	}
	// Double removal is a no-op.
	w.Remove(coin)
}

func TestSpawnDuringHandlerIsDeferred(t *testing.T) {
	w := NewWorld(320, 320, 0, NewSimClock())
	p := NewPlayer(20)
	w.AddPlayer(p, 32, 32)
	w.AddItem(NewCoin(1), 40, 32)

	w.AddCollisionHandler(CategoryPlayer, CategoryItem, func(a, b Thing, _ *cp.Arbiter) bool {
		if b.Base().ID() == "coin" {
			w.Remove(b)
			w.AddItem(NewStar(), 200, 200)
		}
		return false
	}, nil)

	w.Step(testDT)

	items := w.Items()
	if len(items) != 1 || items[0].Kind() != ItemStar {
		t.Fatalf("expected the mid-step spawn to land after the step, items = %d", len(items))
	}
	w.Step(testDT)
}

func TestRequestLevelFirstWins(t *testing.T) {
	w := NewWorld(320, 320, 0, NewSimClock())
	w.RequestLevel("levels/level2.txt")
	w.RequestLevel("levels/bonus.txt")

	path, ok := w.PendingLevel()
	if !ok {
		t.Fatalf("expected a pending level")
	}
	if path != "levels/level2.txt" {
		t.Fatalf("expected first request to win, got %s", path)
	}
}
