package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pmalloy/plumber/common"
	"github.com/pmalloy/plumber/level"
	"github.com/pmalloy/plumber/obj"
	"github.com/pmalloy/plumber/prefabs"
	"github.com/pmalloy/plumber/scores"
)

// Player velocity commands, in pixels per second. Horizontal moves carry a
// small downward component so the player stays glued to the ground.
const (
	moveSpeed   = 75
	sprintSpeed = 180
	jumpSpeed   = -210
	duckSpeed   = 150
)

type gameState int

const (
	statePlaying gameState = iota
	stateDead
	stateScores
)

// Game is the top-level tick driver. It owns the player, the current world,
// the simulation clock every timer reads, and the level/death transitions.
type Game struct {
	cfg   *level.Config
	prefs *prefabs.Set

	clock   *obj.SimClock
	builder *level.Builder
	world   *obj.World
	player  *obj.Player

	input *Input

	currentLevel string
	state        gameState

	deathUI  *ebitenui.UI
	scoresUI *ebitenui.UI

	cloudBrain *obj.Script
	watcher    *prefabs.Watcher

	camX   float64
	frames int
	quit   bool
	debug  bool
}

func NewGame(configPath string, debug bool) (*Game, error) {
	cfg, err := level.ReadConfig(configPath)
	if err != nil {
		return nil, err
	}
	prefs, err := prefabs.LoadSet()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		prefs: prefs,
		clock: obj.NewSimClock(),
		debug: debug,
	}
	g.player = obj.NewPlayer(cfg.MaxHealth())
	g.loadCloudBrain()

	g.builder = level.NewBuilder()
	g.registerBuilders()

	if err := g.resetWorld(cfg.StartLevel()); err != nil {
		return nil, err
	}

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) loadCloudBrain() {
	if g.prefs.Cloud.Script == "" {
		g.cloudBrain = nil
		return
	}
	src, err := prefabs.LoadScript(g.prefs.Cloud.Script)
	if err != nil {
		log.Printf("cloud script %s: %v", g.prefs.Cloud.Script, err)
		return
	}
	brain, err := obj.NewScript(src, g.prefs.Cloud.Tempo)
	if err != nil {
		log.Printf("cloud script %s: %v", g.prefs.Cloud.Script, err)
		return
	}
	g.cloudBrain = brain
}

// registerBuilders wires the level symbol table into the world builder.
func (g *Game) registerBuilders() {
	g.builder.Register("#%^?$bI=S", g.buildBlock)
	g.builder.Register("C*", g.buildItem)
	g.builder.Register("&@", g.buildMob)
}

func (g *Game) buildBlock(w *obj.World, symbol rune, x, y int) {
	px := float64(x * common.TileSize)
	py := float64(y * common.TileSize)

	var b *obj.Block
	switch symbol {
	case '#':
		b = obj.NewSolid("brick")
	case '%':
		b = obj.NewSolid("brick_base")
	case '^':
		b = obj.NewSolid("cube")
	case '?':
		b = obj.NewMysteryBlock("", 0, 0)
	case '$':
		b = obj.NewMysteryBlock(g.prefs.Mystery.Drop, g.prefs.Mystery.DropMin, g.prefs.Mystery.DropMax)
	case 'b':
		b = obj.NewBounceBlock(g.prefs.Bounce.Velocity)
	case 'I':
		b = obj.NewFlag()
	case '=':
		b = obj.NewTunnel()
	case 'S':
		b = obj.NewSwitch()
	default:
		b = obj.NewSolid("unknown")
	}
	w.AddBlock(b, px, py)
}

func (g *Game) buildItem(w *obj.World, symbol rune, x, y int) {
	px := float64(x * common.TileSize)
	py := float64(y * common.TileSize)

	switch symbol {
	case 'C':
		w.AddItem(obj.NewCoin(g.prefs.Coin.Value), px, py)
	case '*':
		w.AddItem(obj.NewStar(), px, py)
	}
}

func (g *Game) buildMob(w *obj.World, symbol rune, x, y int) {
	px := float64(x * common.TileSize)
	py := float64(y * common.TileSize)

	switch symbol {
	case '&':
		m := obj.NewCloudMob(g.prefs.Cloud.Tempo, g.prefs.Cloud.DropEvery, g.cloudBrain)
		m.SetFireballSpeed(g.prefs.Fireball.FallSpeed)
		w.AddMob(m, px, py)
	case '@':
		w.AddMob(obj.NewMushroom(g.prefs.Mushroom.Tempo), px, py)
	}
}

// resetWorld rebuilds the world from a level file. All prior non-player
// entities are discarded with the old world; the player is re-attached at the
// configured spawn with a fresh body, score reset, flags cleared.
func (g *Game) resetWorld(path string) error {
	w, err := level.LoadWorld(path, g.builder, g.cfg.Gravity(), g.clock)
	if err != nil {
		return err
	}
	g.world = w
	w.AddPlayer(g.player, g.cfg.SpawnX(), g.cfg.SpawnY())
	g.player.ResetScore()
	g.player.SetJumping(false)
	g.player.SetDucking(false)
	g.currentLevel = path
	g.camX = 0
	g.setupCollisionHandlers()
	return nil
}

// retry restarts the current level after death, back to full health.
func (g *Game) retry() {
	if err := g.resetWorld(g.currentLevel); err != nil {
		log.Printf("retry %s: %v", g.currentLevel, err)
		g.quit = true
		return
	}
	g.player.RestoreHealth()
	g.state = statePlaying
	g.deathUI = nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.pollPrefabs()

	switch g.state {
	case stateDead:
		if g.deathUI == nil {
			g.deathUI = newDeathUI(g)
		}
		g.deathUI.Update()
		return nil
	case stateScores:
		if g.scoresUI != nil {
			g.scoresUI.Update()
		}
		return nil
	}

	if g.input != nil {
		g.input.Update()
		if g.input.ShowScores {
			g.openScores()
			return nil
		}
		g.applyInput()
	}

	g.tick()
	return nil
}

// tick runs one simulation step: mob drive, physics (collision handlers fire
// inside), deferred level transition, timer polling, death check. This order
// is fixed; handlers never re-enter the step.
func (g *Game) tick() {
	g.clock.Advance(common.StepDT)
	now := g.clock.Now()

	for _, m := range g.world.Mobs() {
		m.Drive(g.world, now)
	}

	g.world.Step(common.StepDT)

	if path, ok := g.world.PendingLevel(); ok {
		if err := g.resetWorld(path); err != nil {
			log.Printf("level transition to %s: %v", path, err)
			g.quit = true
		}
		return
	}

	g.player.Tick(now)
	for _, b := range g.world.Blocks() {
		b.Tick(now)
	}

	g.checkDeath()
}

// checkDeath surfaces the retry-or-quit decision exactly once when health
// hits zero. Leaving stateDead requires retry() or quitting.
func (g *Game) checkDeath() {
	if g.state == statePlaying && g.player.Health() <= 0 {
		g.state = stateDead
	}
}

// applyInput turns the polled input state into velocity commands, mirroring
// the keybinding semantics: moving or jumping cancels ducking, jumping is
// gated on the jumping flag.
func (g *Game) applyInput() {
	p := g.player
	in := g.input

	speed := float64(moveSpeed)
	if in.Sprint {
		speed = sprintSpeed
	}

	if in.Left {
		p.SetVelocity(-speed, 10)
		p.SetDucking(false)
	}
	if in.Right {
		p.SetVelocity(speed, 10)
		p.SetDucking(false)
	}
	if in.Jump && !p.Jumping() {
		p.SetVelocity(0, jumpSpeed)
		p.SetJumping(true)
		p.SetDucking(false)
	}
	if in.Duck {
		p.SetVelocity(0, duckSpeed)
		p.SetDucking(true)
	}
}

func (g *Game) openScores() {
	content, err := scores.Read(g.cfg.ScoresPath())
	if err != nil {
		log.Printf("highscores: %v", err)
		content = ""
	}
	g.scoresUI = newScoresUI(g, content)
	g.state = stateScores
}

func (g *Game) closeScores() {
	g.scoresUI = nil
	g.state = statePlaying
}

// pollPrefabs applies pending tuning edits when running with -debug. Reloads
// affect entities built afterwards.
func (g *Game) pollPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		set, err := prefabs.LoadSet()
		if err != nil {
			log.Printf("prefab reload: %v", err)
			return
		}
		g.prefs = set
		g.loadCloudBrain()
		log.Printf("prefabs reloaded after %s changed", name)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.drawHUD(screen)

	switch g.state {
	case stateDead:
		if g.deathUI != nil {
			g.deathUI.Draw(screen)
		}
	case stateScores:
		if g.scoresUI != nil {
			g.scoresUI.Draw(screen)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
