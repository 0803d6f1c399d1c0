package gozipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ShiftLeft(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name  string
		n     int
		focus int
		avail int
		moved bool
	}{
		{name: "within range", n: 2, focus: 2, moved: true},
		{name: "exactly to the edge", n: 3, focus: 1, moved: true},
		{name: "zero distance", n: 0, focus: 4, moved: true},
		{name: "one too far", n: 4, avail: 3},
		{name: "far past the edge", n: 100, avail: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := mustZipper(t, FromSliceAt(xs, 3))

			s := z.ShiftLeft(tt.n)
			require.Equal(t, tt.moved, s.Moved())

			if tt.moved {
				got, ok := s.Zipper()
				require.True(t, ok)
				assert.Equal(t, tt.focus, got.Focus())

				_, reported := s.Available()
				assert.False(t, reported, "a completed move carries no shortfall")
				return
			}

			avail, ok := s.Available()
			require.True(t, ok)
			assert.Equal(t, tt.avail, avail)

			if _, ok := s.Zipper(); ok {
				t.Errorf("a short move must not yield a cursor")
			}
		})
	}
}

func Test_ShiftRight(t *testing.T) {
	z := mustZipper(t, FromSliceAt([]int{1, 2, 3, 4, 5}, 2))

	s := z.ShiftRight(2)
	got, ok := s.Zipper()
	require.True(t, ok)
	require.Equal(t, 5, got.Focus())

	s = z.ShiftRight(3)
	avail, ok := s.Available()
	require.True(t, ok)
	require.Equal(t, 2, avail, "the report is the whole available side, not the overshoot")
}

func Test_Shift_negative_delegates(t *testing.T) {
	z := mustZipper(t, FromSliceAt([]int{1, 2, 3, 4, 5}, 2))

	left := z.ShiftLeft(-2)
	right := z.ShiftRight(2)

	lz, ok := left.Zipper()
	require.True(t, ok)
	rz, ok := right.Zipper()
	require.True(t, ok)
	require.True(t, Equal(lz, rz))
}

func Test_Shift_matches_MoveN_on_success(t *testing.T) {
	z := mustZipper(t, FromSliceAt([]int{1, 2, 3, 4, 5, 6}, 4))

	s := z.ShiftLeft(3)
	sz, ok := s.Zipper()
	require.True(t, ok)
	require.True(t, Equal(mustZipper(t, z.MoveLeftN(3)), sz))
}
