// Released under an MIT license. See LICENSE.

package history

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	called := false

	err := Load(func(io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	if err != nil || called {
		t.Fatalf("expected a missing file to be skipped; got %v, %v", err, called)
	}
}

func TestSaveLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "+ 1 2\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(home, ".lispc_history"))
	if err != nil || string(b) != "+ 1 2\n" {
		t.Fatalf("unexpected history file: %q, %v", b, err)
	}

	var got bytes.Buffer

	err = Load(func(r io.Reader) (int, error) {
		n, err := got.ReadFrom(r)

		return int(n), err
	})
	if err != nil || got.String() != "+ 1 2\n" {
		t.Fatalf("unexpected history: %q, %v", got.String(), err)
	}
}
