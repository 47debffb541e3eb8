package pencil

import (
	"log/slog"
	"strings"

	"github.com/iw2rmb/graphite/internal/grapheme"
	"github.com/iw2rmb/graphite/paper"
)

// Write appends text to p one character at a time. A character the point
// can no longer afford is written as a space, so the paper always grows by
// exactly the number of characters in text.
func (pc *Pencil) Write(text string, p *paper.Paper) {
	if text == "" {
		return
	}

	var sb strings.Builder
	sb.Grow(len(text))
	dull := 0
	for _, ch := range grapheme.Split(text) {
		if pc.spend(PointDurabilityCost(ch)) {
			sb.WriteString(ch)
			continue
		}
		sb.WriteString(space)
		dull++
	}
	p.Write(sb.String())

	pc.trace("write", slog.String("paper", p.ID().String()), slog.Int("dull", dull))
}
