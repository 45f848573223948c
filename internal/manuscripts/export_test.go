package manuscripts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	m := newManuscript(StatePublished)
	m.Abstract = "A short abstract."
	m.Text = "First paragraph.\n\nSecond paragraph."

	out, err := RenderPDF(m)

	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}
