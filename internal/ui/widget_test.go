package ui

import (
	"math"
	"testing"
)

func press(x, y int) Pointer   { return Pointer{X: x, Y: y, JustPressed: true, Pressed: true} }
func hold(x, y int) Pointer    { return Pointer{X: x, Y: y, Pressed: true} }
func release(x, y int) Pointer { return Pointer{X: x, Y: y, JustReleased: true} }

func TestButtonClick(t *testing.T) {
	b := &Button{X: 10, Y: 10, W: 100, H: 30, Label: "Reset"}

	if b.Update(press(50, 20)) {
		t.Fatalf("clicked on press, want click on release")
	}
	if !b.Held {
		t.Fatalf("button not held after press inside")
	}
	if !b.Update(release(50, 20)) {
		t.Fatalf("release inside did not click")
	}
	if b.Held {
		t.Fatalf("button still held after release")
	}
}

func TestButtonDragOffCancels(t *testing.T) {
	b := &Button{X: 10, Y: 10, W: 100, H: 30}
	b.Update(press(50, 20))
	b.Update(hold(300, 300))
	if b.Update(release(300, 300)) {
		t.Fatalf("release outside still clicked")
	}
}

func TestButtonPressOutside(t *testing.T) {
	b := &Button{X: 10, Y: 10, W: 100, H: 30}
	b.Update(press(500, 500))
	if b.Update(release(50, 20)) {
		t.Fatalf("click without press inside")
	}
}

func TestSliderDrag(t *testing.T) {
	s := &Slider{X: 0, Y: 0, W: 200, H: 20, Min: 0.1, Max: 4.0, Value: 1.0}

	if !s.Update(press(100, 10)) {
		t.Fatalf("press on track did not change value")
	}
	want := 0.1 + 0.5*(4.0-0.1)
	if math.Abs(s.Value-want) > 1e-9 {
		t.Fatalf("Value = %v, want %v", s.Value, want)
	}

	// Dragging past the end clamps.
	s.Update(hold(1000, 10))
	if s.Value != 4.0 {
		t.Fatalf("Value = %v, want clamped max", s.Value)
	}
	s.Update(hold(-50, 10))
	if s.Value != 0.1 {
		t.Fatalf("Value = %v, want clamped min", s.Value)
	}

	s.Update(release(-50, 10))
	if s.Dragging {
		t.Fatalf("still dragging after release")
	}
	// Moves after release do nothing.
	if s.Update(hold(150, 10)) {
		t.Fatalf("value changed while not dragging")
	}
}

func TestSliderRatio(t *testing.T) {
	s := &Slider{Min: 0, Max: 10, Value: 2.5}
	if got := s.Ratio(); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("Ratio() = %v, want 0.25", got)
	}
	degenerate := &Slider{Min: 3, Max: 3, Value: 3}
	if got := degenerate.Ratio(); got != 0 {
		t.Fatalf("degenerate Ratio() = %v, want 0", got)
	}
}

func TestCheckboxToggle(t *testing.T) {
	c := &Checkbox{X: 10, Y: 10, Size: 14, Label: "grid"}
	c.Update(press(15, 15))
	if !c.Update(release(15, 15)) {
		t.Fatalf("toggle not reported")
	}
	if !c.Checked {
		t.Fatalf("checkbox not checked after toggle")
	}
	c.Update(press(15, 15))
	c.Update(release(15, 15))
	if c.Checked {
		t.Fatalf("checkbox not unchecked after second toggle")
	}
}

func TestNumFieldFocusAndInput(t *testing.T) {
	f := &NumField{X: 10, Y: 10, W: 80, H: 22}

	if !f.Click(press(20, 20)) {
		t.Fatalf("click inside did not focus")
	}
	f.HandleRunes([]rune("1a2.b5x"))
	if got := f.Text(); got != "12.5" {
		t.Fatalf("Text() = %q, want %q", got, "12.5")
	}
	f.Backspace()
	if got := f.Text(); got != "12." {
		t.Fatalf("after backspace Text() = %q", got)
	}
	f.HandleRunes([]rune("5"))

	v, ok := f.Commit()
	if !ok || v != 12.5 {
		t.Fatalf("Commit() = %v, %v; want 12.5, true", v, ok)
	}
	if f.Active {
		t.Fatalf("field still active after commit")
	}
}

func TestNumFieldMalformedIgnored(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"sign only", "-"},
		{"double dot", "1..2"},
		{"trailing sign", "12-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &NumField{X: 0, Y: 0, W: 80, H: 22}
			f.Click(press(5, 5))
			f.HandleRunes([]rune(tt.input))
			if _, ok := f.Commit(); ok {
				t.Fatalf("Commit accepted %q", tt.input)
			}
		})
	}
}

func TestNumFieldClickAwayDefocuses(t *testing.T) {
	f := &NumField{X: 10, Y: 10, W: 80, H: 22}
	f.Click(press(20, 20))
	f.HandleRunes([]rune("90"))
	f.Click(press(500, 500))
	if f.Active {
		t.Fatalf("field still active after clicking away")
	}

	// Typing while unfocused does nothing.
	f.HandleRunes([]rune("7"))
	f.Cancel()
	if got := f.Text(); got != "" {
		t.Fatalf("buffer not empty after cancel: %q", got)
	}
}
