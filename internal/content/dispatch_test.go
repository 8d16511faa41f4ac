package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchMapsEveryKind(t *testing.T) {
	d := NewDispatcher(nil)

	expected := map[Kind]ID{
		KindLaptop:       IDAbout,
		KindPhone:        IDContact,
		KindNotebook:     IDNotes,
		KindBusinessCard: IDCard,
		KindFolder:       IDProjects,
		KindResume:       IDResume,
		KindTablet:       IDSkills,
	}

	for kind, want := range expected {
		id, ok := d.Dispatch(kind)
		require.True(t, ok, "kind %s should dispatch", kind)
		assert.Equal(t, want, id, "kind %s", kind)
	}
}

func TestDispatchUnknownKindIsNoOp(t *testing.T) {
	d := NewDispatcher(nil)

	id, ok := d.Dispatch(KindUnknown)
	assert.False(t, ok)
	assert.Empty(t, id)

	id, ok = d.Dispatch(Kind(42))
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestEveryPanelHasASection(t *testing.T) {
	d := NewDispatcher(nil)
	for _, kind := range Kinds() {
		id, ok := d.Dispatch(kind)
		require.True(t, ok)

		section, ok := Lookup(id)
		require.True(t, ok, "panel %s should have a section", id)
		assert.NotEmpty(t, section.Title)
		assert.NotEmpty(t, section.Body)
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, ok := ParseKind(kind.String())
		require.True(t, ok)
		assert.Equal(t, kind, parsed)
	}

	_, ok := ParseKind("teapot")
	assert.False(t, ok)

	assert.Equal(t, "unknown", Kind(99).String())
}
