package config

import (
	"bytes"
	"os"
	"testing"
)

func TestExitfWritesMessageAndExitsWithOne(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	stderr = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		stderr = os.Stderr
		exit = os.Exit
	})

	Exitf("web: %s", "content dir missing")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "web: content dir missing\n" {
		t.Fatalf("stderr = %q, want %q", got, "web: content dir missing\n")
	}
}
