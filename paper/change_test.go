package paper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChange_AppendRecord(t *testing.T) {
	p := New(Options{Text: "ab"})
	p.Write("cd")

	c, ok := p.LastChange()
	require.True(t, ok)
	assert.Equal(t, p.ID(), c.PaperID)
	assert.Equal(t, ChangeAppend, c.Kind)
	assert.Equal(t, uint64(0), c.VersionBefore)
	assert.Equal(t, uint64(1), c.VersionAfter)
	assert.Equal(t, 2, c.Index)
	assert.Equal(t, "cd", c.Inserted)
	assert.Empty(t, c.Replaced)
}

func TestChange_ReplaceRecord(t *testing.T) {
	p := New(Options{Text: "ab"})
	require.NoError(t, p.Replace(1, " "))

	c, ok := p.LastChange()
	require.True(t, ok)
	assert.Equal(t, ChangeReplace, c.Kind)
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, " ", c.Inserted)
	assert.Equal(t, "b", c.Replaced)
}

func TestChange_OnChangeFiresOncePerEffectiveMutation(t *testing.T) {
	var got []Change
	p := New(Options{
		Text:     "seed",
		OnChange: func(c Change) { got = append(got, c) },
	})

	p.Write("")
	p.Write("!")
	require.NoError(t, p.Replace(0, "s"))
	require.NoError(t, p.Replace(0, "S"))
	require.Error(t, p.Replace(9, "x"))

	require.Len(t, got, 2)
	assert.Equal(t, ChangeAppend, got[0].Kind)
	assert.Equal(t, ChangeReplace, got[1].Kind)
	assert.Equal(t, uint64(2), got[1].VersionAfter)
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "append", ChangeAppend.String())
	assert.Equal(t, "replace", ChangeReplace.String())
	assert.Equal(t, "unknown", ChangeKind(9).String())
}
