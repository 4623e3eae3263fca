package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/theme"
)

const (
	canvasStep     = 1
	canvasFastStep = 5
)

// Canvas is a terminal stand-in for an anatomical figure: a bordered
// cell grid the user moves a crosshair over. Cell coordinates map to
// the figure's natural pixel space, so grading happens in the same
// space the question targets were authored in.
type Canvas struct {
	ImageW, ImageH float64 // natural figure size in pixels
	CellW, CellH   int     // rendered grid size in cells

	CursorX, CursorY int
	Submitted        bool

	// Reveal state, set by the owning screen after grading.
	Revealed bool
	Target   question.Target
	Hit      bool
}

// NewCanvas creates a canvas for a figure of the given natural size,
// rendered at the given cell dimensions. The crosshair starts centered.
func NewCanvas(imageW, imageH float64, cellW, cellH int) Canvas {
	if cellW < 2 {
		cellW = 2
	}
	if cellH < 2 {
		cellH = 2
	}
	return Canvas{
		ImageW:  imageW,
		ImageH:  imageH,
		CellW:   cellW,
		CellH:   cellH,
		CursorX: cellW / 2,
		CursorY: cellH / 2,
	}
}

// Update handles crosshair movement and submission. Shift-arrows move
// in larger steps.
func (c Canvas) Update(msg tea.Msg) (Canvas, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	step := canvasStep
	key := kmsg.String()
	if strings.HasPrefix(key, "shift+") {
		step = canvasFastStep
		key = strings.TrimPrefix(key, "shift+")
	}

	switch key {
	case "up", "k":
		c.CursorY -= step
	case "down", "j":
		c.CursorY += step
	case "left", "h":
		c.CursorX -= step
	case "right", "l":
		c.CursorX += step
	case "enter", " ":
		c.Submitted = true
	}

	c.CursorX = clamp(c.CursorX, 0, c.CellW-1)
	c.CursorY = clamp(c.CursorY, 0, c.CellH-1)

	return c, nil
}

// Point returns the crosshair position in the figure's natural pixel
// space, sampling the center of the cursor cell.
func (c Canvas) Point() question.Point {
	return question.Point{
		X: (float64(c.CursorX) + 0.5) * c.ImageW / float64(c.CellW),
		Y: (float64(c.CursorY) + 0.5) * c.ImageH / float64(c.CellH),
	}
}

// Reveal switches the canvas into feedback rendering, marking the
// target region and whether the submitted point landed inside it.
func (c Canvas) Reveal(target question.Target, hit bool) Canvas {
	c.Revealed = true
	c.Target = target
	c.Hit = hit
	return c
}

// View renders the grid with the crosshair, and after reveal, the
// target center.
func (c Canvas) View() string {
	targetX, targetY := -1, -1
	if c.Revealed && c.ImageW > 0 && c.ImageH > 0 {
		targetX = clamp(int(c.Target.X*float64(c.CellW)/c.ImageW), 0, c.CellW-1)
		targetY = clamp(int(c.Target.Y*float64(c.CellH)/c.ImageH), 0, c.CellH-1)
	}

	var b strings.Builder
	for y := 0; y < c.CellH; y++ {
		for x := 0; x < c.CellW; x++ {
			switch {
			case x == c.CursorX && y == c.CursorY:
				if c.Revealed {
					if c.Hit {
						b.WriteString(theme.Correct.Render("✚"))
					} else {
						b.WriteString(theme.Incorrect.Render("✚"))
					}
				} else {
					b.WriteString(theme.Crosshair.Render("✚"))
				}
			case x == targetX && y == targetY:
				b.WriteString(theme.Correct.Render("◉"))
			default:
				b.WriteString("·")
			}
		}
		if y < c.CellH-1 {
			b.WriteString("\n")
		}
	}

	return theme.Canvas.Render(b.String())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
