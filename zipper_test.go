package gozipper

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustZipper[T any](t *testing.T, m MaybeZipper[T]) *Zipper[T] {
	t.Helper()

	z, ok := m.Zipper()
	if !ok {
		t.Fatalf("expected a present cursor")
	}

	return z
}

func Test_FromSlice(t *testing.T) {
	if !FromSlice([]int{}).IsAbsent() {
		t.Fatalf("empty slice must build an absent cursor")
	}

	z := mustZipper(t, FromSlice([]int{1, 2, 3}))
	require.Equal(t, 1, z.Focus())
	require.Equal(t, 0, z.Index())
	require.Equal(t, []int{2, 3}, z.Rights())
	require.False(t, z.HasLeft())
}

func Test_FromSlice_copies_input(t *testing.T) {
	xs := []int{1, 2, 3}
	z := mustZipper(t, FromSlice(xs))

	xs[1] = 99
	require.Equal(t, []int{1, 2, 3}, z.ToSlice())
}

func Test_FromSliceAt(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name   string
		k      int
		absent bool
		focus  int
		lefts  []int
		rights []int
	}{
		{name: "middle", k: 3, focus: 4, lefts: []int{3, 2, 1}, rights: []int{5, 6, 7}},
		{name: "first", k: 0, focus: 1, lefts: nil, rights: []int{2, 3, 4, 5, 6, 7}},
		{name: "last", k: 6, focus: 7, lefts: []int{6, 5, 4, 3, 2, 1}, rights: nil},
		{name: "negative", k: -1, absent: true},
		{name: "past the end", k: 7, absent: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromSliceAt(xs, tt.k)
			if tt.absent {
				require.True(t, m.IsAbsent())
				return
			}

			z := mustZipper(t, m)
			assert.Equal(t, tt.focus, z.Focus())
			assert.Equal(t, tt.k, z.Index())
			assert.Equal(t, tt.lefts, z.Lefts())
			assert.Equal(t, tt.rights, z.Rights())
		})
	}
}

func Test_FromSeq(t *testing.T) {
	z := mustZipper(t, FromSeq(slices.Values([]string{"a", "b", "c"})))
	require.Equal(t, []string{"a", "b", "c"}, z.ToSlice())
	require.Equal(t, "a", z.Focus())

	if !FromSeq(slices.Values([]string{})).IsAbsent() {
		t.Errorf("an empty sequence must build an absent cursor")
	}
}

func Test_Zipper_WithFocus_MapFocus(t *testing.T) {
	z := mustZipper(t, FromSliceAt([]int{1, 2, 3}, 1))

	got := z.WithFocus(20)
	require.Equal(t, []int{1, 20, 3}, got.ToSlice())
	require.Equal(t, 2, z.Focus(), "receiver must stay untouched")

	// Only the focus is rebuilt; both sides are shared with the receiver.
	if got.lefts != z.lefts || got.rights != z.rights {
		t.Errorf("WithFocus must share both sides")
	}

	doubled := z.MapFocus(func(v int) int { return v * 10 })
	require.Equal(t, []int{1, 20, 3}, doubled.ToSlice())
}

func Test_Zipper_Len_Index(t *testing.T) {
	z := mustZipper(t, FromSliceAt([]int{1, 2, 3, 4, 5, 6, 7}, 3))

	require.Equal(t, 7, z.Len())
	require.Equal(t, 3, z.Index())
	require.True(t, z.HasLeft())
	require.True(t, z.HasRight())
}

func Test_Zipper_ToSlice(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6, 7}
	for k := range xs {
		z := mustZipper(t, FromSliceAt(xs, k))
		require.Equal(t, xs, z.ToSlice(), "focus position %d", k)
	}
}

func Test_Zipper_All(t *testing.T) {
	z := mustZipper(t, FromSliceAt([]string{"a", "b", "c"}, 1))

	type pair struct {
		i int
		v string
	}
	var got []pair
	for i, v := range z.All() {
		got = append(got, pair{i, v})
	}
	require.Equal(t, []pair{{0, "a"}, {1, "b"}, {2, "c"}}, got)

	var first []string
	for _, v := range z.All() {
		first = append(first, v)
		break
	}
	require.Equal(t, []string{"a"}, first)
}

func Test_Zipper_String(t *testing.T) {
	tests := []struct {
		name string
		m    MaybeZipper[int]
		want string
	}{
		{"middle focus", FromSliceAt([]int{1, 2, 3, 4, 5, 6, 7}, 3), "[1 2 3] >4< [5 6 7]"},
		{"single element", FromSlice([]int{1}), "[] >1< []"},
		{"at start", FromSlice([]int{1, 2}), "[] >1< [2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, mustZipper(t, tt.m).String())
		})
	}
}

func Test_Equal(t *testing.T) {
	at := func(k int) *Zipper[int] {
		return mustZipper(t, FromSliceAt([]int{1, 2, 3}, k))
	}

	tests := []struct {
		name string
		a    *Zipper[int]
		b    *Zipper[int]
		want bool
	}{
		{"same content and position", at(1), at(1), true},
		{"same content, shifted focus", at(1), at(2), false},
		{"different content", at(0), mustZipper(t, FromSlice([]int{9, 2, 3})), false},
		{"nil vs nil", nil, nil, true},
		{"nil vs value", nil, at(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("%s: got %v want %v", tt.name, got, tt.want)
			}
		})
	}
}

func Test_EqualFunc_cross_type(t *testing.T) {
	a := mustZipper(t, FromSliceAt([]int{1, 2, 3}, 1))
	b := mustZipper(t, FromSliceAt([]string{"x", "xx", "xxx"}, 1))

	eq := func(n int, s string) bool { return n == len(s) }
	require.True(t, EqualFunc(a, b, eq))

	shifted := mustZipper(t, FromSliceAt([]string{"x", "xx", "xxx"}, 2))
	require.False(t, EqualFunc(a, shifted, eq))
}
