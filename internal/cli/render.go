package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jotapp/jot/internal/format"
	"github.com/jotapp/jot/internal/timeline"
)

var (
	dayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))
)

// RenderDay renders one bucket for plain terminal output. Empty buckets
// render as just the header so the window stays visibly contiguous.
func (c *Context) RenderDay(day timeline.Day) string {
	var b strings.Builder

	b.WriteString(dayHeaderStyle.Render(day.Label))
	b.WriteString("\n")

	if len(day.Todos)+len(day.Habits)+len(day.Thoughts) == 0 {
		b.WriteString(sectionStyle.Render("  nothing here"))
		b.WriteString("\n")
		return b.String()
	}

	for _, inst := range day.Habits {
		mark := "○"
		title := "(deleted habit)"
		if inst.Habit != nil {
			title = inst.Habit.Title
		}
		line := fmt.Sprintf("  %s %s", mark, title)
		if inst.Habit != nil && inst.Habit.DueTime != nil {
			line += sectionStyle.Render(" @ " + format.DueTime(*inst.Habit.DueTime))
		}
		if inst.Skipped {
			line = fmt.Sprintf("  - %s %s", title, sectionStyle.Render("(skipped)"))
		} else if inst.Completed {
			line = "  ✓ " + doneStyle.Render(title)
		}
		b.WriteString(line + idStyle.Render("  "+inst.ID) + "\n")
	}

	for _, todo := range day.Todos {
		line := "  [ ] " + todo.Title
		if todo.Completed {
			line = "  [x] " + doneStyle.Render(todo.Title)
		}
		if todo.DueDate != nil {
			line += sectionStyle.Render(" due " + format.DateTime(*todo.DueDate, c.Location))
		}
		b.WriteString(line + idStyle.Render("  "+todo.ID) + "\n")
	}

	for _, thought := range day.Thoughts {
		b.WriteString("  · " + thought.Content + idStyle.Render("  "+thought.ID) + "\n")
	}

	return b.String()
}

// RenderWindow renders a whole window of buckets.
func (c *Context) RenderWindow(days []timeline.Day) string {
	parts := make([]string, 0, len(days))
	for _, day := range days {
		parts = append(parts, c.RenderDay(day))
	}
	return strings.Join(parts, "\n")
}
