package pencil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite_AppendsToPaper(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("")
	pc.Write("bird", p)
	assert.Equal(t, "bird", p.Text())
	assert.Equal(t, 96, pc.PointDurability())
}

func TestWrite_AppendsAfterExistingText(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("")
	pc.Write("She sells sea shells", p)
	pc.Write(" down by the sea shore", p)
	assert.Equal(t, "She sells sea shells down by the sea shore", p.Text())
}

func TestWrite_LowercaseCostsOne(t *testing.T) {
	pc := New(100, 10, 50)
	pc.Write(strings.Repeat("q", 37), newPaper(""))
	assert.Equal(t, 63, pc.PointDurability())
}

func TestWrite_UppercaseCostsTwo(t *testing.T) {
	pc := New(100, 10, 50)
	pc.Write(strings.Repeat("Q", 20), newPaper(""))
	assert.Equal(t, 60, pc.PointDurability())
}

func TestWrite_NonLettersAreFree(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("")
	pc.Write("1, 2; 3!\n\t?", p)
	assert.Equal(t, 100, pc.PointDurability())
	assert.Equal(t, "1, 2; 3!\n\t?", p.Text())
}

func TestWrite_DullPointWritesSpace(t *testing.T) {
	pc := New(100, 10, 50)
	p := newPaper("")
	pc.Write(strings.Repeat("b", 99), p)
	pc.Write("B", p)

	assert.Equal(t, 1, pc.PointDurability())
	assert.Equal(t, strings.Repeat("b", 99)+" ", p.Text())
}

func TestWrite_DurabilityNeverNegative(t *testing.T) {
	pc := New(4, 10, 50)
	p := newPaper("")
	pc.Write("Text", p)

	assert.Equal(t, "Tex ", p.Text())
	assert.Equal(t, 0, pc.PointDurability())
}

func TestWrite_FreeCharactersSurviveDullPoint(t *testing.T) {
	pc := New(2, 10, 50)
	p := newPaper("")
	pc.Write("ab c!", p)

	assert.Equal(t, "ab  !", p.Text())
	assert.Equal(t, 0, pc.PointDurability())
}

func TestWrite_OneCellPerCharacter(t *testing.T) {
	pc := New(3, 10, 50)
	p := newPaper("")
	pc.Write("e\u0301aE\u0301z", p)

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, "e\u0301a z", p.Text())
	assert.Equal(t, 0, pc.PointDurability())
}

func TestWrite_EmptyTextLeavesPaperUntouched(t *testing.T) {
	pc := New(10, 10, 50)
	p := newPaper("keep")
	pc.Write("", p)
	assert.Equal(t, "keep", p.Text())
	assert.Equal(t, uint64(0), p.Version())
}
