package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/ballfreq/internal/model"
	"github.com/verte-zerg/ballfreq/internal/selector"
	"github.com/verte-zerg/ballfreq/internal/session"
	"github.com/verte-zerg/ballfreq/internal/stats"
)

var (
	titleStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	emphasisStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footnoteStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Italic(true)
	slotStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Width(3).Align(lipgloss.Right)
	choiceStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	choiceSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

var (
	mainBallStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E1E")).
			Background(lipgloss.Color("#F0F0F0")).
			Padding(0, 1).
			Margin(0, 1)
	powerballStyle = mainBallStyle.
			Foreground(lipgloss.Color("#F0F0F0")).
			Background(lipgloss.Color("#D0342C"))
	focusStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	blurStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder(), true)
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render("Powerball number frequencies"),
		m.renderBalls(),
	}
	if m.focused().State() == selector.Editing {
		sections = append(sections, m.dropdown.View())
	}
	sections = append(sections,
		"",
		m.renderResult(model.Main),
		m.renderResult(model.Powerball),
		"",
		m.renderSlots(model.Main, "Most drawn balls"),
		m.renderSlots(model.Powerball, "Most drawn Powerballs"),
	)
	if note := m.renderFootnote(); note != "" {
		sections = append(sections, "", note)
	}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, "", status)
	}
	content := strings.Join(sections, "\n")
	footer := m.renderHelp()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, lipgloss.NewStyle().MaxWidth(m.width).Render(footer))
	return body + "\n" + footerLine
}

func (m *Model) renderBalls() string {
	parts := make([]string, 0, len(m.balls))
	for i, ball := range m.balls {
		label := "--"
		if n, ok := ball.Number(); ok {
			label = fmt.Sprintf("%2d", n)
		}
		style := mainBallStyle
		if ball.BallType() == model.Powerball {
			style = powerballStyle
		}
		frame := blurStyle
		if i == m.focus {
			frame = focusStyle
		}
		parts = append(parts, frame.Render(style.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *Model) renderResult(bt model.BallType) string {
	label := mutedStyle.Render(bt.Label() + ": ")
	r, ok := m.results[bt]
	if !ok {
		return label + mutedStyle.Render("pick a number")
	}
	prefix, count, suffix := stats.FrequencyParts(r.freq)
	line := label + fmt.Sprintf("%d  ", r.number) + prefix
	if count != "" {
		line += emphasisStyle.Render(count) + suffix
	}
	if r.hasRank {
		line += mutedStyle.Render(fmt.Sprintf("  (rank #%d of %d)", r.rank.Rank, r.ranked))
	}
	return line
}

func (m *Model) renderSlots(bt model.BallType, title string) string {
	slots := m.board.Slots(bt)
	cells := make([]string, 0, len(slots))
	for _, slot := range slots {
		label := "·"
		if slot.Bound {
			label = fmt.Sprintf("%d", slot.Number)
		}
		cells = append(cells, slotStyle.Render(label))
	}
	return mutedStyle.Render(runewidth.FillRight(title, 22)) + strings.Join(cells, " ")
}

func (m *Model) renderFootnote() string {
	d, ok := m.latestDate()
	if !ok {
		return ""
	}
	return footnoteStyle.Render("Data as of " + stats.FormatDate(d))
}

func (m *Model) renderStatus() string {
	var lines []string
	if m.loading() {
		lines = append(lines, m.spinner.View()+mutedStyle.Render(" Loading datasets..."))
	}
	for _, bt := range model.BallTypes {
		if m.session.Status(bt) != session.Failed {
			continue
		}
		msg := fmt.Sprintf("%s data unavailable", bt.Label())
		if err := m.session.Err(bt); err != nil {
			msg += ": " + err.Error()
		}
		lines = append(lines, errorStyle.Render(truncateLine(msg, m.width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	if m.focused().State() == selector.Editing {
		return m.help.View(editingHelp{})
	}
	return m.help.View(idleHelp{})
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
