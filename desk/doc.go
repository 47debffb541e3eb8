// Package desk provides a Bubble Tea component for driving a pencil against
// a sheet of paper from a one-line command prompt.
//
// The component owns one paper.Paper and one pencil.Pencil. It renders the
// paper in a scrolling viewport, the pencil's remaining resources in a status
// line, and reports every effective command through Config.OnChange.
package desk
