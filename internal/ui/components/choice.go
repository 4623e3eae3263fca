package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/theme"
)

// Choice is a four-option answer selector. It tracks the highlighted
// option and whether the user has committed to it; grading and reveal
// styling are driven by the screen that owns it.
type Choice struct {
	Prompt    string
	Options   [4]string
	Selected  int // -1 until the user highlights an option
	Submitted bool

	// Reveal state, set by the owning screen after grading.
	Revealed   bool
	CorrectKey string
}

// NewChoice creates a selector with no option highlighted yet.
func NewChoice(prompt string, options [4]string) Choice {
	return Choice{
		Prompt:   prompt,
		Options:  options,
		Selected: -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Enter without a
// highlighted option does nothing.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		} else if c.Selected < 0 {
			c.Selected = 0
		}
	case "down", "j":
		if c.Selected < 0 {
			c.Selected = 0
		} else if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "a", "b", "c", "d":
		c.Selected = int(kmsg.String()[0] - 'a')
	case "1", "2", "3", "4":
		c.Selected = int(kmsg.String()[0] - '1')
	case "enter":
		if c.Selected >= 0 {
			c.Submitted = true
		}
	}

	return c, nil
}

// Key returns the answer key for the highlighted option, or "" if
// nothing is highlighted.
func (c Choice) Key() string {
	if c.Selected < 0 || c.Selected >= len(question.ChoiceKeys) {
		return ""
	}
	return question.ChoiceKeys[c.Selected]
}

// Reveal switches the selector into feedback rendering, highlighting
// the correct option against the user's pick.
func (c Choice) Reveal(correctKey string) Choice {
	c.Revealed = true
	c.CorrectKey = correctKey
	return c
}

// View renders the selector.
func (c Choice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		key := question.ChoiceKeys[i]
		prefix := "  "
		if i == c.Selected && !c.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, key, opt)

		if c.Revealed {
			switch {
			case key == c.CorrectKey:
				s += theme.Correct.Render(line) + "\n"
			case i == c.Selected:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}
