package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulberry32Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestMulberry32DifferentSeeds(t *testing.T) {
	a := New(1)
	b := New(2)
	require.NotEqual(t, a.Uint32(), b.Uint32())
}

func TestMulberry32Float64Range(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestMulberry32IntnRange(t *testing.T) {
	r := New(99)
	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
}

func TestMulberry32IntnPanicsOnNonPositive(t *testing.T) {
	r := New(1)
	require.Panics(t, func() { r.Intn(0) })
}

func TestMulberry32KnownSequence(t *testing.T) {
	// Regression guard: the first few outputs for seed 1 must never
	// silently drift if the algorithm is touched.
	r := New(1)
	first := r.Uint32()
	second := r.Uint32()
	require.NotEqual(t, first, second)
	require.Equal(t, uint32(2693262067), first)
	require.Equal(t, uint32(11749833), second)

	again := New(1)
	require.Equal(t, first, again.Uint32())
	require.Equal(t, second, again.Uint32())
}
