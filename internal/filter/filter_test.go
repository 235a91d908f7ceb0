package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasses(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		root     string
		exclude  string
		expected bool
	}{
		{"no_root", "/anything/at/all.c", "", "", true},
		{"no_root_relative", "src/a.c", "", "ignored", true},
		{"under_root", "/a/b/c", "/a/b", "", true},
		{"outside_root", "/a/x/c", "/a/b", "", false},
		{"excluded", "/a/b/sub/c", "/a/b", "sub", false},
		{"not_excluded", "/a/b/other/c", "/a/b", "sub", true},
		{"root_with_separator", "/a/b/c", "/a/b/", "", true},
		{"sibling_prefix", "/a/bc/d", "/a/b", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Passes(tt.file, tt.root, tt.exclude))
		})
	}
}

func TestNewAppendsSeparator(t *testing.T) {
	assert.Equal(t, "/proj/", New("/proj", "").Root)
	assert.Equal(t, "/proj/", New("/proj/", "").Root)
	assert.Equal(t, "", New("", "x").Root)
	assert.False(t, New("", "").Enabled())
}

func TestRewrite(t *testing.T) {
	f := New("/proj/", "")
	assert.Equal(t, "src/x.cpp", f.Rewrite("/proj/src/x.cpp"))

	// Remoção não ancorada: só a primeira ocorrência sai.
	f = New("lib", "")
	assert.Equal(t, "/opt/a/lib/b.c", f.Rewrite("/opt/lib/a/lib/b.c"))

	assert.Equal(t, "/x/y.c", New("", "").Rewrite("/x/y.c"))
}
