package pencil

import (
	"context"
	"log/slog"
)

const (
	space     = " "
	collision = "@"
)

// Pencil holds the wearable state of a pencil. It keeps no reference to the
// paper it writes on.
type Pencil struct {
	maxPointDurability int
	pointDurability    int
	length             int
	eraserDurability   int

	log *slog.Logger
}

// Option configures a Pencil.
type Option func(*Pencil)

// WithLogger routes debug traces of every operation to l.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pencil) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a freshly sharpened pencil. Negative arguments are clamped to 0.
func New(maxPointDurability, length, eraserDurability int, opts ...Option) *Pencil {
	maxPointDurability = max(maxPointDurability, 0)
	p := &Pencil{
		maxPointDurability: maxPointDurability,
		pointDurability:    maxPointDurability,
		length:             max(length, 0),
		eraserDurability:   max(eraserDurability, 0),
		log:                slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pencil) PointDurability() int    { return p.pointDurability }
func (p *Pencil) MaxPointDurability() int { return p.maxPointDurability }
func (p *Pencil) Length() int             { return p.length }
func (p *Pencil) EraserDurability() int   { return p.eraserDurability }

// Stats is a point-in-time copy of the pencil counters.
type Stats struct {
	PointDurability    int
	MaxPointDurability int
	Length             int
	EraserDurability   int
}

func (p *Pencil) Stats() Stats {
	return Stats{
		PointDurability:    p.pointDurability,
		MaxPointDurability: p.maxPointDurability,
		Length:             p.length,
		EraserDurability:   p.eraserDurability,
	}
}

// Sharpen restores the point to full durability at the cost of one unit of
// length. A pencil with no length left is unchanged.
func (p *Pencil) Sharpen() {
	if p.length <= 0 {
		p.log.Debug("sharpen skipped", slog.String("op", "sharpen"), slog.Int("length", p.length))
		return
	}
	p.pointDurability = p.maxPointDurability
	p.length--
	p.trace("sharpen")
}

// spend charges cost against the point if it can be afforded.
func (p *Pencil) spend(cost int) bool {
	if p.pointDurability-cost < 0 {
		return false
	}
	p.pointDurability -= cost
	return true
}

func (p *Pencil) trace(op string, attrs ...slog.Attr) {
	attrs = append(attrs,
		slog.String("op", op),
		slog.Int("point", p.pointDurability),
		slog.Int("length", p.length),
		slog.Int("eraser", p.eraserDurability),
	)
	p.log.LogAttrs(context.Background(), slog.LevelDebug, op, attrs...)
}
