package game

import (
	"testing"
	"time"
)

func TestNewCentersPlayer(t *testing.T) {
	g := New()
	if g.player.X != screenWidth/2 || g.player.Y != screenHeight/2 {
		t.Fatalf("player should start centered, got (%v,%v)", g.player.X, g.player.Y)
	}
	if g.player.Size != playerSize {
		t.Fatalf("player size = %d, want %d", g.player.Size, playerSize)
	}
	if g.player.Speed != defaultSpeedPixelsPerSecond {
		t.Fatalf("player speed = %v, want %v", g.player.Speed, defaultSpeedPixelsPerSecond)
	}
}

func TestScreenDimensionsPositive(t *testing.T) {
	g := New()
	if g.ScreenWidth() <= 0 || g.ScreenHeight() <= 0 {
		t.Fatalf("screen dimensions must be positive, got %dx%d", g.ScreenWidth(), g.ScreenHeight())
	}
}

func TestSpeedEnvOverride(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want float64
	}{
		{name: "valid", env: "120.5", want: 120.5},
		{name: "garbage falls back", env: "fast", want: defaultSpeedPixelsPerSecond},
		{name: "negative falls back", env: "-50", want: defaultSpeedPixelsPerSecond},
		{name: "zero falls back", env: "0", want: defaultSpeedPixelsPerSecond},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DELTATIME_SPEED", tc.env)
			g := New()
			if g.player.Speed != tc.want {
				t.Fatalf("speed = %v, want %v", g.player.Speed, tc.want)
			}
		})
	}
}

func TestFirstFrameDeltaIsZero(t *testing.T) {
	g := New()
	if dt := g.measureDelta(); dt != 0 {
		t.Fatalf("first frame delta = %v, want 0", dt)
	}
	time.Sleep(time.Millisecond)
	if dt := g.measureDelta(); dt <= 0 {
		t.Fatalf("second frame delta = %v, want > 0", dt)
	}
}

func TestBackwardsClockReportsZeroDelta(t *testing.T) {
	g := New()
	g.lastFrame = time.Now().Add(time.Hour)
	if dt := g.measureDelta(); dt != 0 {
		t.Fatalf("delta with future lastFrame = %v, want 0", dt)
	}
}
