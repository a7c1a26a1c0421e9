package game

import (
	"image"

	"deltatime/internal/entities"
)

// heldVector sums the unit vectors of all currently held directions. Opposite
// keys cancel; two perpendicular keys sum to a diagonal that is deliberately
// not normalized, so diagonal movement is sqrt(2) times faster than axis
// movement.
func (g *Game) heldVector() (dx, dy int) {
	for _, d := range entities.Directions() {
		if g.held[d] {
			ddx, ddy := entities.DirDelta(d)
			dx += ddx
			dy += ddy
		}
	}
	return dx, dy
}

func (g *Game) updatePlayerMovement(dt float64) {
	dx, dy := g.heldVector()
	g.player.X += float64(dx) * g.player.Speed * dt
	g.player.Y += float64(dy) * g.player.Speed * dt
	g.clampPlayer()
}

// displayRect derives the integer draw rectangle from the exact float center.
// Truncation, not rounding: the rect follows the float position the same way
// an int conversion would.
func (g *Game) displayRect() image.Rectangle {
	s := g.player.Size
	cx, cy := int(g.player.X), int(g.player.Y)
	return image.Rect(cx-s/2, cy-s/2, cx+s/2, cy+s/2)
}

func (g *Game) screenRect() image.Rectangle {
	return image.Rect(0, 0, screenWidth, screenHeight)
}

// clampPlayer keeps the display rect inside the screen. When clamping moves
// the rect, the exact position snaps to the clamped rect center so the float
// coordinates don't lose sync and keep accumulating off-screen.
func (g *Game) clampPlayer() {
	r := g.displayRect()
	clamped := clampRect(r, g.screenRect())
	if clamped == r {
		g.atEdge = false
		return
	}
	s := g.player.Size
	g.player.X = float64(clamped.Min.X + s/2)
	g.player.Y = float64(clamped.Min.Y + s/2)
	if !g.atEdge && g.audio != nil {
		g.audio.PlayBump()
	}
	g.atEdge = true
}

// clampRect shifts r so it lies within bounds, preferring the top-left edge
// when r is larger than bounds.
func clampRect(r, bounds image.Rectangle) image.Rectangle {
	if r.Max.X > bounds.Max.X {
		r = r.Add(image.Pt(bounds.Max.X-r.Max.X, 0))
	}
	if r.Min.X < bounds.Min.X {
		r = r.Add(image.Pt(bounds.Min.X-r.Min.X, 0))
	}
	if r.Max.Y > bounds.Max.Y {
		r = r.Add(image.Pt(0, bounds.Max.Y-r.Max.Y))
	}
	if r.Min.Y < bounds.Min.Y {
		r = r.Add(image.Pt(0, bounds.Min.Y-r.Min.Y))
	}
	return r
}
