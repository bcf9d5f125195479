package ui

import (
	"fmt"
	"strings"

	"github.com/five82/pomodoro/internal/pomodoro"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot

	parts := []string{
		bg.Render("pomodoro", styles.Logo),
		styles.PhaseBadge(snap.Phase).Render(snap.Phase.String()),
		m.runState(styles, bg),
		bg.Render("Pomodoros:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d", snap.CompletedWorkSessions), styles.Text),
	}

	if m.width >= LayoutCompactWidth {
		parts = append(parts,
			bg.Render("Cycles:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", snap.CompletedLongCycles), styles.Text),
		)
		if !snap.LastUpdated.IsZero() {
			parts = append(parts, bg.Render(snap.LastUpdated.Format("15:04:05"), styles.MutedText))
		}
	}

	return bg.FillLine(bg.Join(parts, "  "), m.width)
}

// runState describes whether the countdown is moving.
func (m Model) runState(styles Styles, bg BgStyle) string {
	switch {
	case m.snapshot.Phase == pomodoro.Idle:
		return bg.Render("○ IDLE", styles.MutedText)
	case m.snapshot.Counting:
		return bg.Render("● RUNNING", styles.SuccessText)
	default:
		return bg.Render("‖ PAUSED", styles.WarningText.Bold(true))
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	pauseKey := m.keys.Pause.Help().Key
	bindings := m.keys.ShortHelp()
	segments := make([]string, 0, len(bindings)+3)
	for _, b := range bindings {
		h := b.Help()
		desc := h.Desc
		if h.Key == pauseKey {
			desc = m.pauseLabel()
		}
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(desc, styles.MutedText))
	}

	bell := m.keys.Bell.Help()
	segments = append(segments,
		bg.Render(bell.Key, styles.AccentText)+colon+bg.Render("Bell "+onOff(m.prefs.BellEnabled()), styles.FaintText))

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	if m.notice != "" {
		style := styles.WarningText
		if m.noticeErr {
			style = styles.DangerText
		}
		segments = append(segments, bg.Render(truncate(m.notice, 30), style))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// pauseLabel is the label of the pause key for the current state.
func (m Model) pauseLabel() string {
	if m.snapshot.Phase != pomodoro.Idle && !m.snapshot.Counting {
		return "Continue"
	}
	return "Pause"
}
