package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jotapp/jot/internal/format"
	"github.com/jotapp/jot/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Width(18)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Model shows the signed-in user's account details and aggregate counts.
type Model struct {
	user   *models.User
	stats  *models.Stats
	loc    *time.Location
	width  int
	height int
}

func New(loc *time.Location, width, height int) Model {
	return Model{loc: loc, width: width, height: height}
}

func (m *Model) SetUser(user *models.User)    { m.user = user }
func (m *Model) SetStats(stats *models.Stats) { m.stats = stats }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	if m.user == nil {
		return dimStyle.Render("Loading profile…")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Hi, "+format.FirstName(m.user.Name)) + "\n\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("Email", m.user.Email)
	row("Member since", format.DateTime(m.user.CreatedAt, m.loc))

	if m.stats != nil {
		b.WriteString("\n" + titleStyle.Render("Stats") + "\n\n")
		row("Thoughts", fmt.Sprintf("%d", m.stats.ThoughtsCount))
		row("Todos", fmt.Sprintf("%d done of %d (%.0f%%)",
			m.stats.CompletedTodosCount, m.stats.TodosCount, m.stats.CompletionRate*100))
		row("Habits", fmt.Sprintf("%d tracked, %d of %d done (%.0f%%)",
			m.stats.HabitsCount, m.stats.HabitInstancesCompleted,
			m.stats.HabitInstancesTotal, m.stats.HabitCompletionRate*100))
	}

	b.WriteString("\n" + dimStyle.Render("p: change password"))
	return b.String()
}
