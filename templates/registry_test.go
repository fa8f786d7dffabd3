package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterReplacesOnDuplicateID(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewModern()))
	require.NoError(t, r.Register(NewModern()))

	assert.Len(t, r.List(), 1)
}

func TestRegistry_RegisterRejectsMissingID(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(&htmlTemplate{meta: Meta{}}))
}

func TestRegistry_ListKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewClassic()))
	require.NoError(t, r.Register(NewModern()))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "classic", list[0].Meta().ID)
	assert.Equal(t, "modern", list[1].Meta().ID)
}

func TestRegistry_ByCategory(t *testing.T) {
	r := NewDefaultRegistry()

	professional := r.ByCategory("professional")
	assert.NotEmpty(t, professional)
	for _, tpl := range professional {
		assert.Contains(t, tpl.Meta().Categories, "professional")
	}

	assert.Empty(t, r.ByCategory("no-such-category"))
}

func TestSession_SelectUnknownLeavesCurrentUnchanged(t *testing.T) {
	s := NewSession(NewDefaultRegistry())

	require.True(t, s.Select("modern"))
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "modern", current.Meta().ID)

	assert.False(t, s.Select("does-not-exist"))
	current, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, "modern", current.Meta().ID)
}

func TestSession_NoSelection(t *testing.T) {
	s := NewSession(NewDefaultRegistry())

	_, err := s.Render(sampleModel())
	require.Error(t, err)

	_, err = s.Validate(sampleModel())
	require.Error(t, err)

	_, err = s.CSS()
	require.Error(t, err)
}

func TestSession_RenderAfterSelect(t *testing.T) {
	s := NewSession(NewDefaultRegistry())
	require.True(t, s.Select("classic"))

	out, err := s.Render(sampleModel())
	require.NoError(t, err)
	assert.Contains(t, out, "cv-classic")
}
