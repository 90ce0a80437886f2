package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInstanceReturnsSameConfig verifies the single-instance invariant:
// no matter how often values change, Instance keeps handing out the same
// Config and reads observe the latest writes.
func TestInstanceReturnsSameConfig(t *testing.T) {
	a := Instance()
	b := Instance()
	require.Same(t, a, b)

	a.SetName("Starlight Cinemas")
	a.SetScreenCount(5)
	assert.Equal(t, "Starlight Cinemas", Instance().Name())
	assert.Equal(t, 5, Instance().ScreenCount())

	// No validation: negative counts are stored verbatim.
	Instance().SetScreenCount(-3)
	assert.Equal(t, -3, a.ScreenCount())
}

// TestInstanceConcurrentFirstUse races several goroutines on Instance and
// checks that they all see one and the same Config.
func TestInstanceConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	seen := make([]*Config, 16)
	for i := range seen {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = Instance()
		}(i)
	}
	wg.Wait()

	for _, c := range seen {
		require.Same(t, seen[0], c)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CINEMA_NAME", "Riverside Drive-In")
	t.Setenv("CINEMA_SCREENS", "3")

	cfg := ApplyEnv()
	require.Same(t, Instance(), cfg)
	assert.Equal(t, "Riverside Drive-In", cfg.Name())
	assert.Equal(t, 3, cfg.ScreenCount())
}

// TestApplyEnvKeepsFieldsOnBadInput checks that unset or malformed
// variables leave the current values alone instead of zeroing them.
func TestApplyEnvKeepsFieldsOnBadInput(t *testing.T) {
	Instance().SetName("Riverside Drive-In")
	Instance().SetScreenCount(7)
	t.Setenv("CINEMA_NAME", "")
	t.Setenv("CINEMA_SCREENS", "many")

	cfg := ApplyEnv()
	assert.Equal(t, "Riverside Drive-In", cfg.Name())
	assert.Equal(t, 7, cfg.ScreenCount())
}
