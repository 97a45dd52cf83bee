package verifier_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10ncheck/pkg/verifier"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := verifier.NewRegistry()
	require.NoError(t, reg.Register(&verifier.Descriptor{Name: "b.Type"}))
	require.NoError(t, reg.Register(colors{}))

	err := reg.Register(colors{})
	assert.ErrorIs(t, err, verifier.ErrDuplicateKeyType)

	err = reg.Register(&verifier.Descriptor{})
	assert.ErrorIs(t, err, verifier.ErrInvalidKeyType)
	assert.ErrorIs(t, reg.Register(nil), verifier.ErrInvalidKeyType)

	kt, ok := reg.Lookup("app.Colors")
	require.True(t, ok)
	assert.Equal(t, colors{}, kt)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"app.Colors", "b.Type"}, reg.Names())
	assert.Panics(t, func() { reg.MustRegister(colors{}) })
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := verifier.NewRegistry()
	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c", "d"} {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, reg.Register(&verifier.Descriptor{Name: name}))
		}()
		go func() {
			defer wg.Done()
			_ = reg.Names()
			_, _ = reg.Lookup(name)
		}()
	}
	wg.Wait()
	assert.Len(t, reg.Names(), 4)
}
