package pencil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const woodchuck = "How much wood would a woodchuck chuck if a woodchuck could chuck wood?"

func TestErase_RemovesLastOccurrence(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("")
	pc.Write("lovely day for a bike ride today", p)
	pc.Erase("day", p)

	assert.Equal(t, "lovely day for a bike ride to   ", p.Text())
	assert.Equal(t, 47, pc.EraserDurability())
}

func TestErase_RepeatedCallsWorkLeftward(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper(woodchuck)

	pc.Erase("chuck", p)
	assert.Equal(t, "How much wood would a woodchuck chuck if a woodchuck could       wood?", p.Text())

	pc.Erase("chuck", p)
	assert.Equal(t, "How much wood would a woodchuck chuck if a wood      could       wood?", p.Text())
	assert.Equal(t, 40, pc.EraserDurability())
}

func TestErase_MissingTextIsNoop(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("lovely day")
	pc.Erase("night", p)

	assert.Equal(t, "lovely day", p.Text())
	assert.Equal(t, 50, pc.EraserDurability())
	assert.Equal(t, uint64(0), p.Version())
}

func TestErase_EmptyTextIsNoop(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("lovely day")
	pc.Erase("", p)

	assert.Equal(t, "lovely day", p.Text())
	assert.Equal(t, 50, pc.EraserDurability())
}

func TestErase_StopsWhenEraserIsWorn(t *testing.T) {
	pc := New(100, 10, 3)
	p := newPaper("Buffalo Bill")
	pc.Erase("Bill", p)

	assert.Equal(t, "Buffalo B   ", p.Text())
	assert.Equal(t, 0, pc.EraserDurability())
}

func TestErase_WornEraserDoesNothing(t *testing.T) {
	pc := New(100, 10, 0)
	p := newPaper("Buffalo Bill")
	pc.Erase("Bill", p)

	assert.Equal(t, "Buffalo Bill", p.Text())
	assert.Equal(t, 0, pc.EraserDurability())
}

func TestErase_SpacesAreFree(t *testing.T) {
	pc := New(100, 10, 2)
	p := newPaper("a b c")
	pc.Erase("b c", p)

	assert.Equal(t, "a    ", p.Text())
	assert.Equal(t, 0, pc.EraserDurability())
}

func TestErase_HaltsBeforeTrailingSpaceOnceWorn(t *testing.T) {
	pc := New(100, 10, 1)
	p := newPaper("a b c")
	pc.Erase("b c", p)

	assert.Equal(t, "a b  ", p.Text())
	assert.Equal(t, 0, pc.EraserDurability())
}

func TestErase_ChargesOnlyNonSpaceCharacters(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("one  two three")
	pc.Erase("one  two", p)

	assert.Equal(t, "         three", p.Text())
	assert.Equal(t, 44, pc.EraserDurability())
}

func TestErase_CountsGraphemes(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("cafe\u0301 cafe\u0301")
	pc.Erase("fe\u0301", p)

	assert.Equal(t, "cafe\u0301 ca  ", p.Text())
	assert.Equal(t, 9, p.Len())
	assert.Equal(t, 48, pc.EraserDurability())
}

func TestErase_DoesNotWearPoint(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("Bill")
	pc.Erase("Bill", p)
	assert.Equal(t, 100, pc.PointDurability())
}
