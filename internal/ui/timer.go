package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pomodoro/internal/pomodoro"
)

// renderBody renders the timer panel and the recent activity below it.
func (m Model) renderBody() string {
	height := m.height - 2 // header + command bar
	if height < 1 {
		height = 1
	}

	panel := m.renderTimer()
	free := height - lipgloss.Height(panel) - 3
	body := lipgloss.JoinVertical(lipgloss.Center, panel, "", m.renderActivity(free))

	return lipgloss.Place(
		m.width,
		height,
		lipgloss.Center,
		lipgloss.Top,
		body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}

// renderTimer renders the countdown panel.
func (m Model) renderTimer() string {
	surface := m.theme.SurfaceAlt
	styles := m.theme.Styles().WithBackground(surface)
	bg := NewBgStyle(surface)
	snap := m.snapshot
	phase := snap.Phase

	heading := bg.Render("You are currently:", styles.MutedText) + bg.Space() +
		bg.Render(phase.Label(), styles.PhaseText(phase))

	clock := bg.Render(pomodoro.FormatClock(snap.RemainingSeconds), styles.PhaseText(phase))
	if phase != pomodoro.Idle && !snap.Counting {
		clock += bg.Space() + bg.Render("(paused)", styles.WarningText)
	}

	lines := []string{
		heading,
		"",
		clock,
		m.renderProgress(),
		"",
		bg.Render(fmt.Sprintf("One finished cycle consists of %d finished pomodoros",
			snap.Config.CyclesPerLongRest), styles.Text),
		"",
		statLine(styles, bg, "Finished pomodoros", fmt.Sprintf("%d", snap.CompletedWorkSessions)),
		statLine(styles, bg, "Finished cycles", fmt.Sprintf("%d", snap.CompletedLongCycles)),
		statLine(styles, bg, "Total working time", pomodoro.FormatClock(snap.TotalWorkedSeconds)),
		statLine(styles, bg, "Short rests before long rest", fmt.Sprintf("%d", snap.ShortRestsLeft)),
	}

	// pad every line so the panel background has no gaps
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	fill := lipgloss.WithWhitespaceBackground(lipgloss.Color(surface))
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, l, fill)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(surface)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.panelBorder())).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Padding(1, 4).
		Render(strings.Join(lines, "\n"))
}

// panelBorder is the phase color while the countdown runs.
func (m Model) panelBorder() string {
	if m.snapshot.Phase != pomodoro.Idle && m.snapshot.Counting {
		return m.theme.PhaseColor(m.snapshot.Phase)
	}
	return m.theme.Border
}

// renderProgress draws how much of the current phase has elapsed.
func (m Model) renderProgress() string {
	width := m.width - 16
	if width > LayoutMaxBarWidth {
		width = LayoutMaxBarWidth
	}
	if width < 10 {
		width = 10
	}
	bar := progress.New(
		progress.WithSolidFill(m.theme.PhaseColor(m.snapshot.Phase)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = m.theme.Border
	return bar.ViewAs(m.snapshot.Progress())
}

// renderActivity lists the most recent events, newest first.
func (m Model) renderActivity(room int) string {
	styles := m.theme.Styles()
	if room <= 0 {
		return ""
	}

	title := styles.AccentText.Bold(true).Render("Recent activity")
	history := m.snapshot.History
	if len(history) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			styles.FaintText.Render("Nothing yet. Press w to start working."))
	}

	limit := min(maxActivity, room-1, len(history))
	lines := make([]string, 0, limit+1)
	lines = append(lines, title)
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		e := history[i]
		lines = append(lines,
			styles.FaintText.Render(e.At.Format("15:04:05"))+"  "+
				styles.PhaseText(e.Phase).Render(activityLine(e)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statLine(styles Styles, bg BgStyle, label, value string) string {
	return bg.Render(label+":", styles.MutedText) + bg.Space() + bg.Render(value, styles.Text)
}
