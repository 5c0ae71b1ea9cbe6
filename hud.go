package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pmalloy/plumber/common"
)

// hudHeight is the vertical space reserved at the top of the screen for the
// health bar; the world is drawn below it.
const hudHeight = 28

var (
	hudGreen  = color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}
	hudOrange = color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
	hudRed    = color.RGBA{R: 0xcd, G: 0x00, B: 0x00, A: 0xff}
	hudGold   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// drawHUD renders the health bar and score. Color tracks remaining health
// (green above half, orange above a quarter, red below) and goes gold for the
// whole invincibility window.
func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.player

	vector.DrawFilledRect(screen, 0, 0, common.BaseWidth, 20, color.Black, false)

	frac := 0.0
	if p.MaxHealth() > 0 {
		frac = p.Health() / p.MaxHealth()
	}

	var col color.Color
	switch {
	case p.Invincible():
		col = hudGold
	case frac >= 0.5:
		col = hudGreen
	case frac >= 0.25:
		col = hudOrange
	default:
		col = hudRed
	}

	if frac > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(common.BaseWidth*frac), 20, col, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", p.Score()), 4, hudHeight+2)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  t=%.1fs", ebiten.ActualFPS(), g.clock.Now()), 4, hudHeight+18)
	}
}
