package admin

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
)

type palette struct {
	header  lipgloss.Style
	border  lipgloss.Style
	faint   lipgloss.Style
	title   lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	success lipgloss.Style

	statusColors   map[vo.TicketStatus]lipgloss.Color
	priorityColors map[vo.Priority]lipgloss.Color
}

// theme targets 256-colour terminals with a dark background.
var theme = palette{
	header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1),
	border:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	title:   lipgloss.NewStyle().Bold(true),
	warning: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	danger:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	success: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),

	statusColors: map[vo.TicketStatus]lipgloss.Color{
		vo.StatusOpen:       lipgloss.Color("114"), // green
		vo.StatusAssigned:   lipgloss.Color("75"),  // blue
		vo.StatusInProgress: lipgloss.Color("220"), // amber
		vo.StatusCompleted:  lipgloss.Color("141"), // purple
		vo.StatusClosed:     lipgloss.Color("245"), // gray
	},
	priorityColors: map[vo.Priority]lipgloss.Color{
		vo.PriorityUrgent: lipgloss.Color("196"),
		vo.PriorityHigh:   lipgloss.Color("208"),
		vo.PriorityMedium: lipgloss.Color("75"),
		vo.PriorityLow:    lipgloss.Color("245"),
	},
}

func (p palette) status(s vo.TicketStatus) string {
	color, ok := p.statusColors[s]
	if !ok {
		return s.Label()
	}
	return lipgloss.NewStyle().Foreground(color).Render(s.Label())
}

func (p palette) priority(pr vo.Priority) string {
	color, ok := p.priorityColors[pr]
	if !ok {
		return pr.Label()
	}
	return lipgloss.NewStyle().Foreground(color).Render(pr.Label())
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}

// renderDetail prints label/value pairs as a two-column table.
func renderDetail(w io.Writer, title string, pairs [][2]string) {
	fmt.Fprintln(w, theme.title.Render(title))
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{theme.faint.Render(p[0]), p[1]})
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(2)
		})
	fmt.Fprintln(w, t.Render())
}

func renderPageFooter(w io.Writer, current, last, total int) {
	fmt.Fprintln(w, theme.faint.Render(fmt.Sprintf("Page %d of %d, %d total", current, last, total)))
}

func renderEmpty(w io.Writer, entity string) {
	fmt.Fprintln(w, theme.faint.Render(fmt.Sprintf("No %s found.", entity)))
}

func orDash(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
