package gozipper

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LinesFromReader(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		absent bool
		want   []string
	}{
		{name: "plain lines", in: "alpha\nbeta\ngamma\n", want: []string{"alpha", "beta", "gamma"}},
		{name: "no trailing newline", in: "alpha\nbeta", want: []string{"alpha", "beta"}},
		{name: "crlf endings", in: "alpha\r\nbeta\r\n", want: []string{"alpha", "beta"}},
		{name: "blank lines kept", in: "alpha\n\nbeta\n", want: []string{"alpha", "", "beta"}},
		{name: "empty stream", in: "", absent: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LinesFromReader(strings.NewReader(tt.in))
			require.NoError(t, err)

			if tt.absent {
				require.True(t, m.IsAbsent())
				return
			}

			z := mustZipper(t, m)
			assert.Equal(t, tt.want, z.ToSlice())
			assert.Equal(t, tt.want[0], z.Focus())
		})
	}
}

func Test_LinesFromReader_propagates_read_errors(t *testing.T) {
	boom := errors.New("boom")

	m, err := LinesFromReader(iotest.ErrReader(boom))

	require.ErrorIs(t, err, boom)
	require.True(t, m.IsAbsent())
}

func Test_LinesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o600))

	m, err := LinesFromFile(path)
	require.NoError(t, err)

	z := mustZipper(t, m)
	assert.Equal(t, []string{"one", "two", "three"}, z.ToSlice())
}

func Test_LinesFromFile_missing(t *testing.T) {
	m, err := LinesFromFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.True(t, m.IsAbsent())
}
