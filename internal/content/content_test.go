package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCoversStockModals(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"experience-modal", "skills-modal", "projects-modal", "about-modal"}, c.Modals())

	e, ok := c.Lookup("skills-modal")
	require.True(t, ok)
	assert.Equal(t, "Skills", e.Title)

	_, ok = c.Lookup("garage-modal")
	assert.False(t, ok)
}

func TestDecodeAndMerge(t *testing.T) {
	extra, err := Decode([]byte(`{"modals": [
		{"id": "garage-modal", "title": "Garage", "sections": [{"heading": "Cars", "lines": ["one"]}]},
		{"id": "skills-modal", "title": "More Skills"}
	]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, extra.Len())

	c := Default()
	c.Merge(extra)
	assert.Equal(t, 5, c.Len())

	e, ok := c.Lookup("skills-modal")
	require.True(t, ok)
	assert.Equal(t, "More Skills", e.Title)
	assert.Equal(t, "garage-modal", c.Modals()[4])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{"modals": [{"title": "x"}]}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`nope`))
	assert.ErrorContains(t, err, "parse content")
}
