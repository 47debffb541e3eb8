package pencil

import (
	"unicode"
	"unicode/utf8"
)

const (
	upperCost = 2
	lowerCost = 1
)

// PointDurabilityCost returns the point wear of writing ch: 2 for an
// uppercase letter, 1 for a lowercase letter and 0 for anything else.
func PointDurabilityCost(ch string) int {
	r, _ := utf8.DecodeRuneInString(ch)
	switch {
	case r == utf8.RuneError:
		return 0
	case unicode.IsUpper(r):
		return upperCost
	case unicode.IsLower(r):
		return lowerCost
	default:
		return 0
	}
}
