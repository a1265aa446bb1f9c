package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoaded(t *testing.T) {
	for _, name := range []string{"Interface", "Id", "Producer", "Policy", "Warning", "Error", "Heading"} {
		assert.True(t, Has(name), "style %s should be defined", name)
	}

	assert.True(t, GetStyle("Interface").GetBold())
	assert.True(t, GetStyle("Policy").GetItalic())
	assert.True(t, GetStyle("Heading").GetUnderline())
}

func TestGetStyleUnknown(t *testing.T) {
	style := GetStyle("DoesNotExist")
	assert.False(t, style.GetBold())
	assert.Equal(t, "text", style.Render("text"))
}

func TestLoad(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Load(defaultStyles)) })

	require.NoError(t, Load([]byte(`
colors:
  c:
    light: "#000000"
    dark: "#ffffff"
styles:
  Only:
    bold: true
    foreground: c
`)))
	assert.True(t, Has("Only"))
	assert.False(t, Has("Interface"))

	assert.Error(t, Load([]byte("colors: [")))
	assert.True(t, Has("Only"), "a failed load keeps the previous styles")
}
