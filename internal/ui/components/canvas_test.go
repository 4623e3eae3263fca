package components

import (
	"math"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestNewCanvas_NaturalDimensionsFromQuestion(t *testing.T) {
	// Natural dimensions come straight off a coordinate question's
	// float64 fields.
	q := question.Question{
		ID:       "anat-1",
		Category: "anatomy",
		Kind:     question.KindCoordinate,
		Prompt:   "Locate the gallbladder",
		ImageRef: "torso-anterior",
		ImageW:   800,
		ImageH:   600,
		Target:   question.Target{X: 360, Y: 340, Radius: 40},
	}

	c := NewCanvas(q.ImageW, q.ImageH, 60, 16)

	if c.ImageW != 800 || c.ImageH != 600 {
		t.Errorf("natural size = %v x %v, want 800 x 600", c.ImageW, c.ImageH)
	}
	if c.CursorX != 30 || c.CursorY != 8 {
		t.Errorf("cursor = (%d, %d), want centered (30, 8)", c.CursorX, c.CursorY)
	}
}

func TestCanvas_PointSamplesCellCenter(t *testing.T) {
	c := NewCanvas(800, 600, 60, 16)
	c.CursorX, c.CursorY = 0, 0

	p := c.Point()
	wantX := 0.5 * 800.0 / 60.0
	wantY := 0.5 * 600.0 / 16.0
	if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
		t.Errorf("Point = (%v, %v), want (%v, %v)", p.X, p.Y, wantX, wantY)
	}

	// The far corner stays inside the natural bounds.
	c.CursorX, c.CursorY = 59, 15
	p = c.Point()
	if p.X >= 800 || p.Y >= 600 {
		t.Errorf("Point = (%v, %v), want inside 800 x 600", p.X, p.Y)
	}
}

func TestCanvas_MovementClampsToGrid(t *testing.T) {
	c := NewCanvas(800, 600, 10, 10)
	c.CursorX, c.CursorY = 0, 0

	c, _ = c.Update(keyPress('h'))
	c, _ = c.Update(keyPress('k'))
	if c.CursorX != 0 || c.CursorY != 0 {
		t.Errorf("cursor = (%d, %d), want clamped at (0, 0)", c.CursorX, c.CursorY)
	}

	for i := 0; i < 20; i++ {
		c, _ = c.Update(keyPress('l'))
		c, _ = c.Update(keyPress('j'))
	}
	if c.CursorX != 9 || c.CursorY != 9 {
		t.Errorf("cursor = (%d, %d), want clamped at (9, 9)", c.CursorX, c.CursorY)
	}
}

func TestCanvas_SubmitFreezesCursor(t *testing.T) {
	c := NewCanvas(800, 600, 10, 10)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !c.Submitted {
		t.Fatal("enter should submit")
	}

	x := c.CursorX
	c, _ = c.Update(keyPress('l'))
	if c.CursorX != x {
		t.Error("cursor must not move after submission")
	}
}

func TestCanvas_RevealMarksTarget(t *testing.T) {
	c := NewCanvas(800, 600, 10, 10)
	c = c.Reveal(question.Target{X: 400, Y: 300, Radius: 40}, false)

	if !c.Revealed || c.Hit {
		t.Fatalf("reveal state = %v/%v, want revealed miss", c.Revealed, c.Hit)
	}
	if !strings.Contains(c.View(), "◉") {
		t.Error("revealed view should mark the target cell")
	}
}
