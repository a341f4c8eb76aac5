package propstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreGetSet(t *testing.T) {
	s := NewMemStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.True(t, s.Set("key", "value"))
	v, ok := s.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	// Overwrites are visible to the next read.
	require.True(t, s.Set("key", ""))
	v, ok = s.Get("key")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestMemStoreConcurrentAccess(t *testing.T) {
	s := NewMemStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("shared", "v")
				s.Get("shared")
			}
		}()
	}
	wg.Wait()

	v, ok := s.Get("shared")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}
