package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sena-ops/cppcheck2teamcity/internal/adapters"
	"github.com/Sena-ops/cppcheck2teamcity/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func writeProject(t *testing.T) (root, report string) {
	t.Helper()
	root = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))

	var src strings.Builder
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&src, "line %d [x]\n", i)
	}
	srcPath := filepath.Join(root, "src", "a.c")
	require.NoError(t, os.WriteFile(srcPath, []byte(src.String()), 0o644))

	report = filepath.Join(root, "cppcheck.xml")
	doc := `<?xml version="1.0"?>
<results version="2"><errors>
<error id="nullPointer" severity="error" msg="Null pointer dereference" verbose="Null pointer dereference">
<location file="` + srcPath + `" line="10"/>
</error>
</errors></results>`
	require.NoError(t, os.WriteFile(report, []byte(doc), 0o644))
	return root, report
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CPPCHECK_BIN", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootMatch(t *testing.T) {
	root, report := writeProject(t)

	out, err := run(t, "--xmlfile", report, "--root", root+"/")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "##teamcity[inspection typeId='nullPointer'"))
	assert.Contains(t, lines[0], "file='src/a.c'")
	assert.Contains(t, lines[0], "line='10'")
	assert.Contains(t, lines[0], "line 10 |[x|]|n")
}

func TestRootMismatch(t *testing.T) {
	_, report := writeProject(t)

	out, err := run(t, "-f", report, "-r", "/other/")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMalformedReport(t *testing.T) {
	report := filepath.Join(t.TempDir(), "cppcheck.xml")
	require.NoError(t, os.WriteFile(report, []byte("<results><error"), 0o644))

	out, err := run(t, "-f", report)
	assert.ErrorIs(t, err, adapters.ErrParse)
	assert.Empty(t, out)
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	root, report := writeProject(t)
	cfgPath := filepath.Join(t.TempDir(), "cppcheck2teamcity.yaml")
	content := "xmlfile: " + report + "\nroot: /other/\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	out, err := run(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "--config", cfgPath, "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "file='src/a.c'")
}

func TestTypesMissingBinary(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cppcheck2teamcity.yaml")
	content := "cppcheck_bin: " + filepath.Join(t.TempDir(), "no-cppcheck") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	out, err := run(t, "types", "--config", cfgPath)
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := run(t, "extra")
	assert.Error(t, err)
}

type syncCore struct {
	zapcore.Core
	synced bool
}

func (c *syncCore) Sync() error {
	c.synced = true
	return nil
}

func TestExecuteSyncsLoggerOnError(t *testing.T) {
	prev := logging.Logger
	t.Cleanup(func() { logging.Logger = prev })
	core := &syncCore{Core: zapcore.NewNopCore()}
	logging.Logger = zap.New(core).Sugar()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := execute(cmd)
	assert.Error(t, err)
	assert.True(t, core.synced)
}
