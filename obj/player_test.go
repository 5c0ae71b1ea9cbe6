package obj

import "testing"

func TestPlayerHealthClamps(t *testing.T) {
	p := NewPlayer(20)

	p.ChangeHealth(-5)
	if got := p.Health(); got != 15 {
		t.Fatalf("health = %v, want 15", got)
	}

	p.ChangeHealth(-100)
	if got := p.Health(); got != 0 {
		t.Fatalf("health should clamp at 0, got %v", got)
	}

	p.ChangeHealth(100)
	if got := p.Health(); got != 20 {
		t.Fatalf("health should clamp at max, got %v", got)
	}

	p.ChangeHealth(-3)
	p.RestoreHealth()
	if got := p.Health(); got != 20 {
		t.Fatalf("restore should fill to max, got %v", got)
	}
}

func TestPlayerScoreNeverNegative(t *testing.T) {
	p := NewPlayer(20)

	p.AddScore(5)
	p.AddScore(-3)
	if got := p.Score(); got != 5 {
		t.Fatalf("negative deltas should be ignored, score = %d", got)
	}

	p.ResetScore()
	if got := p.Score(); got != 0 {
		t.Fatalf("score after reset = %d", got)
	}
}

func TestPlayerInvincibilityWindow(t *testing.T) {
	clock := NewSimClock()
	p := NewPlayer(20)

	p.SetInvincible(clock.Now())
	if !p.Invincible() {
		t.Fatalf("player should be invincible after a star")
	}

	clock.Advance(9.99)
	p.Tick(clock.Now())
	if !p.Invincible() {
		t.Fatalf("window expired early at t=%.2f", clock.Now())
	}

	clock.Advance(0.02)
	p.Tick(clock.Now())
	if p.Invincible() {
		t.Fatalf("window should expire 10s after pickup")
	}
}

func TestPlayerInvincibilityRestartsNotStacks(t *testing.T) {
	clock := NewSimClock()
	p := NewPlayer(20)

	p.SetInvincible(clock.Now())
	clock.Advance(8)
	p.SetInvincible(clock.Now()) // second star restarts the window

	clock.Advance(9)
	p.Tick(clock.Now())
	if !p.Invincible() {
		t.Fatalf("window should run 10s from the second pickup")
	}

	clock.Advance(1.01)
	p.Tick(clock.Now())
	if p.Invincible() {
		t.Fatalf("window should have expired 10s after the second pickup")
	}
}
