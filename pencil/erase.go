package pencil

import (
	"log/slog"

	"github.com/iw2rmb/graphite/internal/grapheme"
	"github.com/iw2rmb/graphite/paper"
)

// Erase blanks out the right-most occurrence of text on p, working from its
// last character towards its first. Each non-space character erased wears
// the eraser by one; once the eraser is gone the rest of the occurrence is
// left as it was. Text that does not occur on the paper is ignored.
func (pc *Pencil) Erase(text string, p *paper.Paper) {
	if text == "" {
		return
	}
	start := p.LastIndex(text)
	if start < 0 {
		return
	}

	end := start + grapheme.Count(text) - 1
	erased := 0
	for i := end; i >= start; i-- {
		if pc.eraserDurability == 0 {
			break
		}
		ch, err := p.At(i)
		if err != nil || ch == space {
			continue
		}
		if err := p.Replace(i, space); err != nil {
			continue
		}
		pc.eraserDurability--
		erased++
	}

	pc.trace("erase", slog.String("paper", p.ID().String()), slog.Int("erased", erased))
}
