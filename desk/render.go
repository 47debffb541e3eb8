package desk

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/graphite"
	"github.com/iw2rmb/graphite/internal/grapheme"
)

const (
	tabWidth   = 4
	gaugeCells = 10
)

func (m Model) View() string {
	parts := []string{
		m.cfg.Style.Title.Render(graphite.Banner()),
		m.viewport.View(),
		m.renderStatus(),
		m.input.View(),
	}
	if m.showHelp {
		parts = append(parts, m.help.View(m.cfg.KeyMap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderPaper() string {
	rows := wrapPaper(m.paper.Text(), m.viewport.Width)
	for i, row := range rows {
		rows[i] = m.cfg.Style.Paper.Render(row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderStatus() string {
	st := m.pencil.Stats()
	counters := fmt.Sprintf("point %d/%d  length %d  eraser %d",
		st.PointDurability, st.MaxPointDurability, st.Length, st.EraserDurability)

	var sb strings.Builder
	sb.WriteString(m.renderGauge(st.PointDurability, st.MaxPointDurability))
	sb.WriteByte(' ')
	sb.WriteString(m.cfg.Style.Status.Render(m.truncate(counters, gaugeCells+1)))
	if m.status != "" {
		used := gaugeCells + 1 + runewidth.StringWidth(counters) + 2
		msg := m.truncate(m.status, used)
		if msg != "" {
			sb.WriteString("  ")
			if m.statusErr {
				sb.WriteString(m.cfg.Style.Error.Render(msg))
			} else {
				sb.WriteString(m.cfg.Style.Status.Render(msg))
			}
		}
	}
	return sb.String()
}

// truncate fits s into whatever width is left after used cells. A desk with
// no width yet does not truncate.
func (m Model) truncate(s string, used int) string {
	if m.width <= 0 {
		return s
	}
	room := m.width - used
	if room <= 0 {
		return ""
	}
	return runewidth.Truncate(s, room, "...")
}

func (m Model) renderGauge(cur, limit int) string {
	full := 0
	if limit > 0 {
		full = cur * gaugeCells / limit
		if full == 0 && cur > 0 {
			full = 1
		}
	}
	return m.cfg.Style.Gauge.Render(strings.Repeat("#", full)) +
		m.cfg.Style.Worn.Render(strings.Repeat("-", gaugeCells-full))
}

// wrapPaper splits text into display rows no wider than width cells. Tabs
// expand to the next multiple of tabWidth. A width of 0 disables wrapping.
func wrapPaper(text string, width int) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	var (
		rows []string
		sb   strings.Builder
		col  int
	)
	flush := func() {
		rows = append(rows, sb.String())
		sb.Reset()
		col = 0
	}
	for _, g := range grapheme.Split(line) {
		cell, w := g, cellWidth(g)
		if g == "\t" {
			w = tabWidth - col%tabWidth
			cell = strings.Repeat(" ", w)
		}
		if width > 0 && col > 0 && col+w > width {
			flush()
			if g == "\t" {
				w = tabWidth
				cell = strings.Repeat(" ", w)
			}
		}
		sb.WriteString(cell)
		col += w
	}
	flush()
	return rows
}

func cellWidth(g string) int {
	w := runewidth.StringWidth(g)
	if w < 0 {
		return 0
	}
	return w
}
