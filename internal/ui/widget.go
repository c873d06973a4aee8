// Package ui implements the handful of immediate-ish widgets the
// visualizer needs: buttons, a slider, checkboxes and a numeric field.
// Widget logic is plain state fed with cursor coordinates and press
// edges so it stays testable; drawing lives in draw.go.
package ui

import "strconv"

// Pointer is the per-frame pointer state widgets consume.
type Pointer struct {
	X, Y         int
	JustPressed  bool
	JustReleased bool
	Pressed      bool
}

func inRect(px, py, x, y, w, h int) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// Button is a click target with hover/pressed visual states.
type Button struct {
	X, Y, W, H int
	Label      string

	Hovered bool
	Held    bool
}

// Update consumes pointer state and reports whether the button was
// clicked this frame (pressed and released inside the rect).
func (b *Button) Update(p Pointer) (clicked bool) {
	b.Hovered = inRect(p.X, p.Y, b.X, b.Y, b.W, b.H)
	if b.Hovered && p.JustPressed {
		b.Held = true
	}
	if p.JustReleased {
		clicked = b.Held && b.Hovered
		b.Held = false
	}
	return clicked
}

// Slider maps a horizontal drag to a value in [Min, Max].
type Slider struct {
	X, Y, W, H int
	Min, Max   float64
	Value      float64

	Hovered  bool
	Dragging bool
}

// Update consumes pointer state and reports whether Value changed.
func (s *Slider) Update(p Pointer) (changed bool) {
	s.Hovered = inRect(p.X, p.Y, s.X, s.Y, s.W, s.H)
	if s.Hovered && p.JustPressed {
		s.Dragging = true
	}
	if p.JustReleased {
		s.Dragging = false
	}
	if !s.Dragging {
		return false
	}
	ratio := float64(p.X-s.X) / float64(s.W)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	v := s.Min + ratio*(s.Max-s.Min)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Ratio is the slider position in [0, 1], for drawing the fill.
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	r := (s.Value - s.Min) / (s.Max - s.Min)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Checkbox is a labeled on/off toggle.
type Checkbox struct {
	X, Y, Size int
	Label      string
	Checked    bool

	Hovered bool
	held    bool
}

// Update consumes pointer state and reports whether the box was toggled.
func (c *Checkbox) Update(p Pointer) (toggled bool) {
	// The label text extends the click target a little past the box.
	w := c.Size + 8*len(c.Label) + 6
	c.Hovered = inRect(p.X, p.Y, c.X, c.Y, w, c.Size)
	if c.Hovered && p.JustPressed {
		c.held = true
	}
	if p.JustReleased {
		if c.held && c.Hovered {
			c.Checked = !c.Checked
			toggled = true
		}
		c.held = false
	}
	return toggled
}

// NumField is a small focusable text box for entering a number. Input
// that does not parse is simply discarded on commit.
type NumField struct {
	X, Y, W, H int
	Active     bool

	buf []rune
}

// Click focuses or defocuses the field depending on where the pointer
// landed, and reports whether focus was gained this frame.
func (f *NumField) Click(p Pointer) (focused bool) {
	if !p.JustPressed {
		return false
	}
	was := f.Active
	f.Active = inRect(p.X, p.Y, f.X, f.Y, f.W, f.H)
	if f.Active && !was {
		f.buf = f.buf[:0]
		return true
	}
	return false
}

// HandleRunes appends typed characters, keeping only those that could be
// part of a number. Everything else is dropped silently.
func (f *NumField) HandleRunes(rs []rune) {
	if !f.Active {
		return
	}
	for _, r := range rs {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			f.buf = append(f.buf, r)
		}
	}
}

// Backspace removes the last character.
func (f *NumField) Backspace() {
	if f.Active && len(f.buf) > 0 {
		f.buf = f.buf[:len(f.buf)-1]
	}
}

// Text is the current buffer contents.
func (f *NumField) Text() string { return string(f.buf) }

// Commit parses the buffer and defocuses the field. ok is false when the
// contents were not a number; callers keep their previous value then.
func (f *NumField) Commit() (v float64, ok bool) {
	f.Active = false
	v, err := strconv.ParseFloat(string(f.buf), 64)
	f.buf = f.buf[:0]
	if err != nil {
		return 0, false
	}
	return v, true
}

// Cancel defocuses the field and discards the buffer.
func (f *NumField) Cancel() {
	f.Active = false
	f.buf = f.buf[:0]
}
