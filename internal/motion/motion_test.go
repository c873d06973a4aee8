package motion

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestSpringMassDisplacement(t *testing.T) {
	s := SpringMass{Amplitude: 2}
	tests := []struct {
		name  string
		theta float64
		want  float64
	}{
		{"released at full stretch", 0, 2},
		{"quarter period at equilibrium", math.Pi / 2, 0},
		{"half period fully compressed", math.Pi, -2},
		{"full period back at start", 2 * math.Pi, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Displacement(tt.theta); math.Abs(got-tt.want) > eps {
				t.Fatalf("Displacement(%v) = %v, want %v", tt.theta, got, tt.want)
			}
		})
	}

	zero := SpringMass{}
	if got := zero.Displacement(1.23); got != 0 {
		t.Fatalf("zero amplitude moved: %v", got)
	}
}

func TestCircularPosition(t *testing.T) {
	c := Circular{Radius: 3}
	x, y := c.Position(0)
	if math.Abs(x-3) > eps || math.Abs(y) > eps {
		t.Fatalf("Position(0) = (%v, %v), want (3, 0)", x, y)
	}
	x, y = c.Position(math.Pi / 2)
	if math.Abs(x) > eps || math.Abs(y-3) > eps {
		t.Fatalf("Position(π/2) = (%v, %v), want (0, 3)", x, y)
	}
	// The point never leaves the circle.
	for theta := 0.0; theta < 7; theta += 0.1 {
		x, y = c.Position(theta)
		if r := math.Hypot(x, y); math.Abs(r-3) > eps {
			t.Fatalf("Position(%v) has radius %v, want 3", theta, r)
		}
	}
}

func TestPendulum(t *testing.T) {
	p := Pendulum{Length: 1.5, MaxAngle: 0.4}

	// Swing angle is bounded by MaxAngle.
	for theta := 0.0; theta < 7; theta += 0.05 {
		if phi := p.Angle(theta); math.Abs(phi) > p.MaxAngle+eps {
			t.Fatalf("Angle(%v) = %v exceeds max %v", theta, phi, p.MaxAngle)
		}
	}

	// At the extremes the swing angle is ±MaxAngle.
	if phi := p.Angle(0); math.Abs(phi-0.4) > eps {
		t.Fatalf("Angle(0) = %v, want 0.4", phi)
	}
	if phi := p.Angle(math.Pi); math.Abs(phi+0.4) > eps {
		t.Fatalf("Angle(π) = %v, want -0.4", phi)
	}

	// Bob hangs below the pivot and stays on the rod circle.
	for theta := 0.0; theta < 7; theta += 0.05 {
		x, y := p.BobPosition(theta)
		if y >= 0 {
			t.Fatalf("BobPosition(%v) = (%v, %v), bob above pivot", theta, x, y)
		}
		if r := math.Hypot(x, y); math.Abs(r-1.5) > eps {
			t.Fatalf("BobPosition(%v) rod length %v, want 1.5", theta, r)
		}
	}

	// Midswing the bob passes straight down.
	x, y := p.BobPosition(math.Pi / 2)
	if math.Abs(x) > eps || math.Abs(y+1.5) > eps {
		t.Fatalf("BobPosition(π/2) = (%v, %v), want (0, -1.5)", x, y)
	}
}
