package game

import (
	"math"
	"testing"
)

func TestClockAdvance(t *testing.T) {
	var c Clock
	c.SetOmega(2.0)
	for i := 0; i < 60; i++ {
		c.Advance(1.0 / 60.0)
	}
	if got := c.Theta(); math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("Theta after 1s at 2 rad/s = %v, want 2", got)
	}
}

func TestClockPaused(t *testing.T) {
	var c Clock
	c.SetOmega(1.0)
	c.SetPaused(true)
	c.Advance(1.0)
	if c.Theta() != 0 {
		t.Fatalf("paused clock advanced to %v", c.Theta())
	}
	c.TogglePaused()
	if c.Paused() {
		t.Fatalf("TogglePaused did not resume")
	}
	c.Advance(0.5)
	if math.Abs(c.Theta()-0.5) > 1e-9 {
		t.Fatalf("Theta = %v, want 0.5", c.Theta())
	}
}

func TestClockNudgeWorksWhilePaused(t *testing.T) {
	var c Clock
	c.SetPaused(true)
	c.Nudge(-1.5)
	if c.Theta() != -1.5 {
		t.Fatalf("Nudge while paused gave %v", c.Theta())
	}
	// Display angle wraps into [0, 2π).
	if got := c.Angle(); math.Abs(got-(2*math.Pi-1.5)) > 1e-9 {
		t.Fatalf("Angle() = %v", got)
	}
}

func TestClockSetAndReset(t *testing.T) {
	var c Clock
	c.SetOmega(3)
	c.SetTheta(7 * math.Pi)
	if got := c.Angle(); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("Angle() = %v, want π", got)
	}
	c.Reset()
	if c.Theta() != 0 {
		t.Fatalf("Reset left theta at %v", c.Theta())
	}
	if c.Omega() != 3 {
		t.Fatalf("Reset clobbered omega: %v", c.Omega())
	}
}

func TestSceneCycle(t *testing.T) {
	s := SceneCircle
	seen := map[Scene]bool{}
	for i := 0; i < int(sceneCount); i++ {
		seen[s] = true
		s = s.Next()
	}
	if s != SceneCircle {
		t.Fatalf("cycle did not wrap, ended at %v", s)
	}
	if len(seen) != int(sceneCount) {
		t.Fatalf("cycle visited %d scenes, want %d", len(seen), sceneCount)
	}
}

func TestParseScene(t *testing.T) {
	tests := []struct {
		in      string
		want    Scene
		wantErr bool
	}{
		{"circle", SceneCircle, false},
		{"unit-circle", SceneCircle, false},
		{"spring", SceneSpring, false},
		{"spring-mass", SceneSpring, false},
		{"circular", SceneCircular, false},
		{"pendulum", ScenePendulum, false},
		{"lissajous", SceneCircle, true},
		{"", SceneCircle, true},
	}
	for _, tt := range tests {
		got, err := ParseScene(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseScene(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseScene(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
