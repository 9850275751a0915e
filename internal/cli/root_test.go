package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hasbyte1/go-macro-collections/internal/config"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTypesCommand(t *testing.T) {
	out, err := execute(t, "", "types")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"list:", "listiterator:", "map:", "mapiterator:", "queue:", "set:", "setiterator:", "stack:"}
	if len(lines) != len(want) {
		t.Fatalf("types output:\n%s", out)
	}
	for i, prefix := range want {
		if !strings.HasPrefix(lines[i], prefix+" ") {
			t.Errorf("line %d = %q; want prefix %q", i+1, lines[i], prefix)
		}
	}
	if !strings.HasSuffix(lines[3], "Clone Key") {
		t.Errorf("mapiterator line = %q", lines[3])
	}
}

func TestReplCommand(t *testing.T) {
	out, err := execute(t, "declare s set\ns.Add b,a\nbogus\ns.Count\n", "repl")
	if err != nil {
		t.Fatal(err)
	}
	if out != "TRUE\n2\n" {
		t.Fatalf("repl output = %q", out)
	}
}

func TestRunCommand(t *testing.T) {
	script := filepath.Join(t.TempDir(), "script.coll")
	if err := os.WriteFile(script, []byte("declare q queue\nq.Push A\nq.Pop\nq.Pop\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "run", script)
	if err != nil {
		t.Fatal(err)
	}
	if out != "TRUE\nA\nFALSE\n" {
		t.Fatalf("run output = %q", out)
	}
}

func TestRunCommand_ReportsLine(t *testing.T) {
	script := filepath.Join(t.TempDir(), "bad.coll")
	if err := os.WriteFile(script, []byte("declare l list\nl.Bogus\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "", "run", script)
	if err == nil || !strings.Contains(err.Error(), "line 2:") {
		t.Fatalf("err = %v; want line 2", err)
	}
}

func TestRunCommand_MissingFile(t *testing.T) {
	if _, err := execute(t, "", "run", filepath.Join(t.TempDir(), "nope")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v; want ErrNotExist", err)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "collsh.toml")
	if err := os.WriteFile(cfg, []byte("delimiter = \";\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "declare l list\nl.Append 'a,b;c'\nl.Count\n", "--config", cfg, "repl")
	if err != nil {
		t.Fatal(err)
	}
	if out != "TRUE\n2\n" {
		t.Fatalf("output = %q", out)
	}

	_, err = execute(t, "", "--config", filepath.Join(dir, "missing.toml"), "types")
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("err = %v; want ErrConfigNotFound", err)
	}
}

func TestVersionString(t *testing.T) {
	if versionString() != "dev (built from source)" {
		t.Fatalf("versionString() = %q", versionString())
	}
}
