package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTLCacheExpires(t *testing.T) {
	c := NewTTL[string, int](10, 50*time.Millisecond)
	c.Set("a", 1)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.Eventually(t, func() bool {
		_, ok := c.Get("a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestTTLCacheEvictsOldest(t *testing.T) {
	c := NewTTL[string, int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	require.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	require.False(t, ok)
}

func TestGetOrLoad(t *testing.T) {
	c := NewTTL[string, int](10, time.Minute)
	loads := 0
	load := func() (int, error) {
		loads++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("answer", load)
		require.NoError(t, err)
		require.Equal(t, 42, v)
	}
	require.Equal(t, 1, loads)

	errBoom := errors.New("boom")
	_, err := c.GetOrLoad("broken", func() (int, error) { return 0, errBoom })
	require.ErrorIs(t, err, errBoom)
	_, ok := c.Get("broken")
	require.False(t, ok)
}
