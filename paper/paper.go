package paper

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iw2rmb/graphite/internal/grapheme"
)

type Options struct {
	// Initial text. Seeding does not count as a change.
	Text string

	// OnChange is called synchronously after every effective mutation.
	OnChange func(Change)
}

// Paper is an append-only sequence of characters whose cells can be
// overwritten in place.
type Paper struct {
	id      uuid.UUID
	cells   []string
	version uint64

	onChange      func(Change)
	lastChange    Change
	hasLastChange bool
}

func New(opt Options) *Paper {
	return &Paper{
		id:       uuid.New(),
		cells:    grapheme.Split(opt.Text),
		onChange: opt.OnChange,
	}
}

func (p *Paper) ID() uuid.UUID { return p.id }

func (p *Paper) Version() uint64 { return p.version }

func (p *Paper) Text() string { return grapheme.Join(p.cells) }

// Len returns the number of characters on the paper.
func (p *Paper) Len() int { return len(p.cells) }

// At returns the character at index i.
func (p *Paper) At(i int) (string, error) {
	if err := checkIndex("paper.At", i, len(p.cells)); err != nil {
		return "", err
	}
	return p.cells[i], nil
}

// Write appends s to the end of the paper.
func (p *Paper) Write(s string) {
	if s == "" {
		return
	}
	change := p.beginChange(ChangeAppend, len(p.cells))
	p.cells = append(p.cells, grapheme.Split(s)...)
	p.version++
	change.Inserted = s
	p.commitChange(change)
}

// Replace overwrites the character at index i with ch. The paper length is
// unchanged. Replacing a character with itself is not a change.
func (p *Paper) Replace(i int, ch string) error {
	if err := checkIndex("paper.Replace", i, len(p.cells)); err != nil {
		return err
	}
	if !grapheme.Single(ch) {
		return fmt.Errorf("paper.Replace: %q: %w", ch, ErrNotCharacter)
	}
	prev := p.cells[i]
	if prev == ch {
		return nil
	}

	change := p.beginChange(ChangeReplace, i)
	p.cells[i] = ch
	p.version++
	change.Inserted = ch
	change.Replaced = prev
	p.commitChange(change)
	return nil
}

// LastIndex returns the index of the right-most occurrence of substr, or -1.
// An empty substr matches at Len().
func (p *Paper) LastIndex(substr string) int {
	return grapheme.LastIndex(p.cells, grapheme.Split(substr))
}
