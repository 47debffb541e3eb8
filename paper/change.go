package paper

import "github.com/google/uuid"

// ChangeKind identifies which mutation produced a change.
type ChangeKind uint8

const (
	ChangeAppend ChangeKind = iota
	ChangeReplace
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAppend:
		return "append"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change is a versioned record of one effective mutation.
type Change struct {
	PaperID       uuid.UUID
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64

	// Index is the first character touched: the old length for appends,
	// the overwritten cell for replacements.
	Index    int
	Inserted string
	// Replaced holds the overwritten character. Empty for appends.
	Replaced string
}

// LastChange returns the most recent effective change.
func (p *Paper) LastChange() (Change, bool) {
	if !p.hasLastChange {
		return Change{}, false
	}
	return p.lastChange, true
}

func (p *Paper) beginChange(kind ChangeKind, index int) Change {
	return Change{
		PaperID:       p.id,
		Kind:          kind,
		VersionBefore: p.version,
		Index:         index,
	}
}

func (p *Paper) commitChange(c Change) {
	if p.version == c.VersionBefore {
		return
	}
	c.VersionAfter = p.version
	p.lastChange = c
	p.hasLastChange = true
	if p.onChange != nil {
		p.onChange(c)
	}
}
