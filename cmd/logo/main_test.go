package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~mango/logo/canvas"
	"git.sr.ht/~mango/logo/parser"
	"git.sr.ht/~mango/logo/vm"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	err := run(append([]string{"logo"}, args...), &buf)
	return buf.String(), err
}

func TestRunWritesImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"square.png", "square.svg"} {
		out := filepath.Join(dir, name)
		if _, err := runArgs(t, "testdata/square.lg", out, "200", "300"); err != nil {
			t.Fatalf("Run failed: %s", err)
		}
		if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
			t.Fatalf("Expected ‘%s’ to be written", out)
		}
	}

	b, err := os.ReadFile(filepath.Join(dir, "square.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(b), "<line"); n != 16 {
		t.Fatalf("Expected 16 lines in the SVG but got %d", n)
	}
	if !strings.Contains(string(b), `width="300`) {
		t.Fatalf("Expected the width to come last on the command line")
	}
}

func TestParseOnly(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	s, err := runArgs(t, "-an", "testdata/square.lg", out, "10", "10")
	if err != nil {
		t.Fatalf("Run failed: %s", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected no image with -n")
	}
	for _, want := range []string{"to: SQUARE", "params: [len]", "while:", "call: SETPENCOLOR"} {
		if !strings.Contains(s, want) {
			t.Fatalf("Expected ‘%s’ in the dumped program:\n%s", want, s)
		}
	}
}

func TestUsage(t *testing.T) {
	tests := [][]string{
		{},
		{"testdata/square.lg", "out.png", "10"},
		{"testdata/square.lg", "out.png", "10", "ten"},
		{"testdata/square.lg", "out.png", "0", "10"},
		{"-x", "testdata/square.lg", "out.png", "10", "10"},
	}
	for _, args := range tests {
		var ue usageError
		if _, err := runArgs(t, args...); !errors.As(err, &ue) {
			t.Fatalf("Expected a usage error for %q but got ‘%v’", args, err)
		}
	}
}

func TestBadExtension(t *testing.T) {
	_, err := runArgs(t, "does-not-exist.lg", "out.gif", "10", "10")
	if !errors.Is(err, canvas.ErrFormat) {
		t.Fatalf("Expected ErrFormat but got ‘%v’", err)
	}
}

func TestMissingScript(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	_, err := runArgs(t, "testdata/nope.lg", out, "10", "10")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected a missing file error but got ‘%v’", err)
	}
}

func TestSyntaxError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	_, err := runArgs(t, "testdata/broken.lg", out, "10", "10")

	var se *parser.SyntaxError
	if !errors.As(err, &se) || se.Line != 2 {
		t.Fatalf("Expected a syntax error on line 2 but got ‘%v’", err)
	}
}

func TestRuntimeError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	_, err := runArgs(t, "testdata/undefined.lg", out, "10", "10")

	var ue vm.UndefinedVariableError
	if !errors.As(err, &ue) || ue.Name != "distance" {
		t.Fatalf("Expected an undefined variable error but got ‘%v’", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected no image after a failed run")
	}
}
