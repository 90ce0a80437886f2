package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRenderIsThemeDistinct checks that the same widget kind renders
// differently per theme, and that each line is the documented output.
func TestRenderIsThemeDistinct(t *testing.T) {
	var dark, light bytes.Buffer
	NewDarkFactory(&dark).CreateButton().Render()
	NewLightFactory(&light).CreateButton().Render()

	assert.Equal(t, "Rendering a dark theme button.\n", dark.String())
	assert.Equal(t, "Rendering a light theme button.\n", light.String())
	assert.NotEqual(t, dark.String(), light.String())
}

// TestRenderIsDeterministic renders the same variant twice through two
// factories and expects identical output.
func TestRenderIsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	NewDarkFactory(&first).CreateCheckbox().Render()
	NewDarkFactory(&second).CreateCheckbox().Render()

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, "Rendering a dark theme checkbox.\n", first.String())
}

// TestFactoryFamilyStaysInTheme verifies the family guarantee: every
// widget obtained from one factory renders in that factory's theme.
func TestFactoryFamilyStaysInTheme(t *testing.T) {
	var out bytes.Buffer
	f := NewLightFactory(&out)
	f.CreateButton().Render()
	f.CreateCheckbox().Render()

	assert.Equal(t, "Rendering a light theme button.\nRendering a light theme checkbox.\n", out.String())
}

func TestNilSinkDefaultsToStdout(t *testing.T) {
	f := NewDarkFactory(nil)
	assert.NotNil(t, f.CreateButton())
}
