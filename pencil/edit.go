package pencil

import (
	"fmt"
	"log/slog"

	"github.com/iw2rmb/graphite/internal/grapheme"
	"github.com/iw2rmb/graphite/paper"
)

// Edit writes text over p starting at index. A character lands only on a
// blank cell; any other cell becomes a collision marker "@". The point is
// charged for the character being written, not for what ends up on the
// paper, and a character the point cannot afford is skipped.
//
// The whole span must already be on the paper. An edit that would reach
// outside it fails with paper.ErrIndexOutOfRange before anything is written.
func (pc *Pencil) Edit(text string, index int, p *paper.Paper) error {
	n := p.Len()
	if index < 0 || index >= n {
		return &paper.IndexError{Op: "pencil.Edit", Index: index, Len: n}
	}
	chars := grapheme.Split(text)
	if last := index + len(chars) - 1; last >= n {
		return &paper.IndexError{Op: "pencil.Edit", Index: last, Len: n}
	}

	skipped, collided := 0, 0
	for i, ch := range chars {
		at := index + i
		existing, err := p.At(at)
		if err != nil {
			return fmt.Errorf("pencil.Edit: %w", err)
		}

		resolved := ch
		if existing != space {
			resolved = collision
		}
		if !pc.spend(PointDurabilityCost(ch)) {
			skipped++
			continue
		}
		if resolved == collision {
			collided++
		}
		if err := p.Replace(at, resolved); err != nil {
			return fmt.Errorf("pencil.Edit: %w", err)
		}
	}

	pc.trace("edit",
		slog.String("paper", p.ID().String()),
		slog.Int("index", index),
		slog.Int("skipped", skipped),
		slog.Int("collided", collided),
	)
	return nil
}
