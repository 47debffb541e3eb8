// Package paper implements the text surface a pencil writes on.
//
// Text is held as grapheme clusters: every index, length and offset in this
// package counts clusters, not bytes or runes. A paper only ever grows by
// appending; characters already on it can be overwritten one at a time but
// never removed.
package paper
