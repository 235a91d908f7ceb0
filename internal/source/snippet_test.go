package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "src.c")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFetcherLine(t *testing.T) {
	path := writeTempFile(t, "int a;\nint *p = 0;\nreturn *p;")

	tests := []struct {
		name     string
		line     int
		expected string
		ok       bool
	}{
		{"first", 1, "int a;\n", true},
		{"middle", 2, "int *p = 0;\n", true},
		{"last_without_newline", 3, "return *p;", true},
		{"out_of_range", 5, "", false},
		{"zero", 0, "", false},
	}

	var f Fetcher
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := f.Line(path, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFetcherLineInvalidUTF8(t *testing.T) {
	path := writeTempFile(t, "ok\nbad \xff byte\n")
	got, ok, err := Fetcher{}.Line(path, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bad � byte\n", got)
}

func TestFetcherBaseDir(t *testing.T) {
	path := writeTempFile(t, "one\ntwo\n")
	f := Fetcher{BaseDir: filepath.Dir(path)}

	got, ok, err := f.Line(filepath.Base(path), 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two\n", got)
}

func TestFetcherMissingFile(t *testing.T) {
	_, _, err := Fetcher{}.Line(filepath.Join(t.TempDir(), "nope.c"), 1)
	assert.ErrorIs(t, err, ErrSourceFile)
}

func TestEnrich(t *testing.T) {
	assert.Equal(t, "Null pointer|n|n  return p|[0|];|n|n", Enrich("Null pointer", "  return p[0];\r\n"))
	assert.Equal(t, "m|n|nx|n", Enrich("m", "x"))
}
