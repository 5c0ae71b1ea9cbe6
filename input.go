package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the discrete directional commands polled from the keyboard
// each frame. The simulation core never reads the keyboard itself; it only
// sees the resulting velocity commands.
type Input struct {
	Left  bool
	Right bool
	// Sprint scales horizontal movement while held.
	Sprint bool
	// Jump is true only on the frame the key goes down.
	Jump bool
	Duck bool
	// ShowScores toggles the highscores overlay.
	ShowScores bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	i.Sprint = ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	i.Jump = inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.Duck = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	i.ShowScores = inpututil.IsKeyJustPressed(ebiten.KeyH)
}
