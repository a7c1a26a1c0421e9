package game

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"time"

	"deltatime/internal/entities"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 500
	screenHeight = 500

	playerSize = 100
	// Sprite core is inset 6px from the rim on every side.
	playerRimInset = 6

	defaultSpeedPixelsPerSecond = 300.0
)

var (
	backgroundColor = color.RGBA{R: 47, G: 79, B: 79, A: 255}  // darkslategrey
	playerColor     = color.RGBA{R: 255, G: 99, B: 71, A: 255} // tomato
)

type Game struct {
	player     *entities.Player
	held       map[entities.Direction]bool
	audio      *AudioManager
	lastFrame  time.Time
	atEdge     bool
	fullscreen bool
	paused     bool
	quit       bool
	scale      float64
}

func New() *Game {
	speed := speedFromEnv()
	p := &entities.Player{
		X:     screenWidth / 2,
		Y:     screenHeight / 2,
		Size:  playerSize,
		Speed: speed,
	}
	g := &Game{
		player: p,
		held:   make(map[entities.Direction]bool),
		audio:  NewAudioManager(),
	}

	// Compute initial scale to fit within ~75% of the display area
	sw, sh := ebiten.ScreenSizeInFullscreen()
	fit := 0.75
	maxW := int(float64(sw) * fit)
	maxH := int(float64(sh) * fit)
	scaleW := float64(maxW) / float64(screenWidth)
	scaleH := float64(maxH) / float64(screenHeight)
	g.scale = math.Min(scaleW, scaleH)
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g
}

// speedFromEnv reads DELTATIME_SPEED (pixels per second) if set, falling back
// to the default.
func speedFromEnv() float64 {
	if env := os.Getenv("DELTATIME_SPEED"); env != "" {
		if v, err := strconv.ParseFloat(env, 64); err == nil && v > 0 {
			return v
		}
	}
	return defaultSpeedPixelsPerSecond
}

func (g *Game) ScreenWidth() int {
	return int(float64(screenWidth) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(screenHeight) * g.scale)
}

func (g *Game) Update() error {
	// Measure elapsed time first so a long pause in input handling can never
	// be charged to the movement step twice.
	dt := g.measureDelta()
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	if g.paused {
		return nil
	}
	g.updatePlayerMovement(dt)
	return nil
}

// measureDelta returns the elapsed seconds since the previous call. The first
// frame reports zero so startup cost does not become a position jump; a clock
// stepped backwards also reports zero.
func (g *Game) measureDelta() float64 {
	now := time.Now()
	var dt float64
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	return dt
}

func (g *Game) handleInput() {
	// Rebuild the held-direction set every frame from current key state
	g.held[entities.DirUp] = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	g.held[entities.DirDown] = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	g.held[entities.DirLeft] = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	g.held[entities.DirRight] = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)

	// Fullscreen toggle with 'F'
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}

	// Pause toggle with Space
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	// Quit with 'Q' or Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Use an offscreen image at native resolution then scale up
	off := ebiten.NewImage(screenWidth, screenHeight)
	off.Fill(backgroundColor)

	// Draw player: dark rim with a lighter core, from the integer display rect
	r := g.displayRect()
	cx := float32(r.Min.X + g.player.Size/2)
	cy := float32(r.Min.Y + g.player.Size/2)
	outer := float32(g.player.Size) / 2
	vector.DrawFilledCircle(off, cx, cy, outer, color.Black, true)
	vector.DrawFilledCircle(off, cx, cy, outer-playerRimInset, playerColor, true)

	// HUD: speed & FPS
	text.Draw(off, fmt.Sprintf("Speed: %.0f px/s  FPS: %0.0f", g.player.Speed, ebiten.ActualFPS()), basicfont.Face7x13, 4, 12, color.White)

	hint := "Arrows/WASD: move  Space: pause  F: fullscreen  Q: quit"
	hw := len(hint) * 7 // basicfont.Face7x13 is roughly 7 pixels wide per character
	text.Draw(off, hint, basicfont.Face7x13, (screenWidth-hw)/2, screenHeight-8, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	// If paused, draw prompt centered
	if g.paused {
		prompt := "Paused"
		pw := len(prompt) * 7
		text.Draw(off, prompt, basicfont.Face7x13, (screenWidth-pw)/2, screenHeight/2, color.White)
	}

	// Scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (w, h int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
