package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pmalloy/plumber/common"
	"github.com/pmalloy/plumber/obj"
)

var entityColors = map[string]color.RGBA{
	"brick":      {R: 0xb3, G: 0x5c, B: 0x1e, A: 0xff},
	"brick_base": {R: 0x6e, G: 0x3a, B: 0x12, A: 0xff},
	"cube":       {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	"bouncyboi":  {R: 0xff, G: 0x7f, B: 0x24, A: 0xff},
	"flagpole":   {R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	"tunnel":     {R: 0x1d, G: 0x7a, B: 0x36, A: 0xff},
	"coin":       {R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	"star":       {R: 0xff, G: 0xf6, B: 0x8f, A: 0xff},
	"cloud":      {R: 0xdd, G: 0xdd, B: 0xee, A: 0xff},
	"fireball":   {R: 0xe3, G: 0x2a, B: 0x0e, A: 0xff},
	"mushroom":   {R: 0x9c, G: 0x27, B: 0x4f, A: 0xff},
	"unknown":    {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
}

// drawWorld renders every entity as a flat-colored box, scrolled so the
// player stays centered until the camera hits a level edge.
func (g *Game) drawWorld(screen *ebiten.Image) {
	worldW, _ := g.world.PixelSize()

	target := g.player.Position().X - common.BaseWidth/2
	target = common.Clamp(target, 0, max(worldW-common.BaseWidth, 0))
	g.camX = common.Lerp(g.camX, target, 0.2)

	for _, t := range g.world.Things() {
		e := t.Base()
		if e.Category() == obj.CategoryWall {
			continue
		}
		bb := e.BB()
		x := float32(bb.L - g.camX)
		y := float32(bb.B + hudHeight)
		w := float32(bb.R - bb.L)
		h := float32(bb.T - bb.B)

		vector.DrawFilledRect(screen, x, y, w, h, g.colorFor(t), false)
	}
}

func (g *Game) colorFor(t obj.Thing) color.Color {
	switch v := t.(type) {
	case *obj.Player:
		if v.Invincible() {
			return hudGold
		}
		return color.RGBA{R: 0x1e, G: 0x5a, B: 0xd8, A: 0xff}
	case *obj.Block:
		switch v.Kind() {
		case obj.BlockSwitch:
			if v.Active() {
				return color.RGBA{R: 0x2e, G: 0xb8, B: 0x2e, A: 0xff}
			}
			return color.RGBA{R: 0x9e, G: 0x2e, B: 0x2e, A: 0xff}
		case obj.BlockMystery:
			if v.Active() {
				return color.RGBA{R: 0xe8, G: 0xc0, B: 0x00, A: 0xff}
			}
			return color.RGBA{R: 0x70, G: 0x60, B: 0x30, A: 0xff}
		}
	}
	if c, ok := entityColors[t.Base().ID()]; ok {
		return c
	}
	return entityColors["unknown"]
}
