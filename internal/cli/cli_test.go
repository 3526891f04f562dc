package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/eclbuild/pkg/platform"
)

// run executes the root command with fresh flag values
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestResolveJSON(t *testing.T) {
	stdout, _, err := run(t, "", "resolve", "--format", "json", "--platform", "Linux", "--eclipse-dir", "/opt/eclipse")
	require.NoError(t, err)

	var setup struct {
		Root       string `json:"eclipse_dir"`
		Arch       string `json:"arch"`
		Extensions []struct {
			Name        string   `json:"name"`
			IncludeDirs []string `json:"include_dirs"`
			LibraryDirs []string `json:"library_dirs"`
			Libraries   []string `json:"libraries"`
		} `json:"extensions"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &setup))

	assert.Equal(t, "/opt/eclipse", setup.Root)
	assert.Equal(t, "i386_linux", setup.Arch)
	require.Len(t, setup.Extensions, 1)
	assert.Equal(t, "pyclp.pyclp", setup.Extensions[0].Name)
	assert.Equal(t, []string{filepath.Join("/opt/eclipse", "include", "i386_linux"), "src/pyclp/"}, setup.Extensions[0].IncludeDirs)
	assert.Equal(t, []string{filepath.Join("/opt/eclipse", "lib", "i386_linux")}, setup.Extensions[0].LibraryDirs)
	assert.Equal(t, []string{"eclipse"}, setup.Extensions[0].Libraries)
}

func TestResolveFromEnvironment(t *testing.T) {
	t.Setenv("ECLIPSEDIR", "/usr/local/eclipse")

	stdout, _, err := run(t, "", "resolve", "--platform", "Windows")
	require.NoError(t, err)
	assert.Contains(t, stdout, "eclipse_dir: /usr/local/eclipse")
	assert.Contains(t, stdout, "arch: i386_nt")
}

func TestResolvePrompts(t *testing.T) {
	t.Setenv("ECLIPSEDIR", "")
	dir := t.TempDir()

	stdout, stderr, err := run(t, "/nonexistent/eclipse\n"+dir+"\n", "resolve", "--platform", "Linux")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "Invalid Path"))
	assert.Contains(t, stderr, "please provide path to ECLiPSe installation")
	assert.Contains(t, stdout, "eclipse_dir: "+dir)
}

func TestResolveNonInteractive(t *testing.T) {
	t.Setenv("ECLIPSEDIR", "")

	_, stderr, err := run(t, "/opt/eclipse\n", "resolve", "--platform", "Linux", "--non-interactive")
	assert.Error(t, err)
	assert.NotContains(t, stderr, "please provide path")
}

func TestResolveUnsupportedPlatform(t *testing.T) {
	_, _, err := run(t, "", "resolve", "--platform", "Darwin", "--eclipse-dir", "/opt/eclipse")
	assert.ErrorIs(t, err, platform.ErrUnsupported)
}

func TestFlags(t *testing.T) {
	stdout, _, err := run(t, "", "flags", "--platform", "Linux", "--eclipse-dir", "/opt/eclipse")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CFLAGS: -I"+filepath.Join("/opt/eclipse", "include", "i386_linux")+" -Isrc/pyclp/")
	assert.Contains(t, stdout, "LDFLAGS: -L"+filepath.Join("/opt/eclipse", "lib", "i386_linux")+" -leclipse")
}

func TestFlagsCgo(t *testing.T) {
	stdout, _, err := run(t, "", "flags", "--cgo", "--platform", "Linux", "--eclipse-dir", "/opt/eclipse")
	require.NoError(t, err)
	assert.Contains(t, stdout, "export CGO_CFLAGS='-I")
	assert.Contains(t, stdout, "export CGO_LDFLAGS='-L")
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `A='x y'`, shellQuote("A=x y"))
	assert.Equal(t, `A='it'\''s'`, shellQuote("A=it's"))
	assert.Equal(t, "plain", shellQuote("plain"))
}

func TestVerify(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "include", "i386_linux"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib", "i386_linux"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lib", "i386_linux", "libeclipse.so"), []byte("x"), 0644))

	stdout, _, err := run(t, "", "verify", "--platform", "Linux", "--eclipse-dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ pyclp.pyclp")
}

func TestVerifyMissing(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := run(t, "", "verify", "--platform", "Linux", "--eclipse-dir", root)
	assert.Error(t, err)
	assert.Contains(t, stdout, "✗ pyclp.pyclp")
	assert.Contains(t, stdout, "library eclipse not found")
}

func TestPlatform(t *testing.T) {
	stdout, _, err := run(t, "", "platform", "--platform", "Windows")
	require.NoError(t, err)
	assert.Contains(t, stdout, "System: Windows")
	assert.Contains(t, stdout, "Arch: i386_nt")

	stdout, _, err = run(t, "", "platform", "--platform", "Darwin")
	assert.ErrorIs(t, err, platform.ErrUnsupported)
	assert.Contains(t, stdout, "Supported systems: [Linux Windows]")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "", "resolve", "--max-attempts", "-1", "--platform", "Linux")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "eclbuild version 0.2.0")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"resolve", "flags", "verify", "platform", "version"} {
		assert.True(t, names[want], want)
	}
}
