package content

import (
	"context"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func copyEmbedded(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	err := fs.WalkDir(Embedded(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		raw, err := fs.ReadFile(Embedded(), path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, raw, 0o644)
	})
	if err != nil {
		t.Fatalf("copy embedded content: %v", err)
	}
	return dir
}

func waitReload(t *testing.T, reloads <-chan error) error {
	t.Helper()
	select {
	case err := <-reloads:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for content reload")
		return nil
	}
}

func TestWatchReloadsChangedContent(t *testing.T) {
	dir := copyEmbedded(t)
	store, err := NewStore(os.DirFS(dir))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	before := store.Catalog()

	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan error, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, store, WatchOptions{
			Debounce: 50 * time.Millisecond,
			Logger:   log.New(io.Discard, "", 0),
			OnReload: func(err error) {
				select {
				case reloads <- err:
				default:
				}
			},
		})
	}()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Fatalf("Watch() error = %v", err)
		}
	}()

	// Give the watcher time to register directories.
	time.Sleep(100 * time.Millisecond)

	eventsPath := filepath.Join(dir, "events.yaml")
	raw, err := os.ReadFile(eventsPath)
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	updated := strings.Replace(string(raw), "ChemE Quiz Competition", "ChemE Quiz Championship", 1)
	if err := os.WriteFile(eventsPath, []byte(updated), 0o644); err != nil {
		t.Fatalf("write events: %v", err)
	}
	if err := waitReload(t, reloads); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	after := store.Catalog()
	if after == before {
		t.Fatal("catalog snapshot was not replaced")
	}
	if got := after.Events[2].Title; got != "ChemE Quiz Championship" {
		t.Fatalf("reloaded title = %q, want %q", got, "ChemE Quiz Championship")
	}
	if got := before.Events[2].Title; got != "ChemE Quiz Competition" {
		t.Fatalf("previous snapshot mutated: %q", got)
	}

	if err := os.WriteFile(eventsPath, []byte("events: [\n"), 0o644); err != nil {
		t.Fatalf("write broken events: %v", err)
	}
	if err := waitReload(t, reloads); err == nil {
		t.Fatal("reload of broken content error = nil, want error")
	}
	if store.Catalog() != after {
		t.Fatal("failed reload replaced the snapshot")
	}
}

func TestWatchRequiresStore(t *testing.T) {
	t.Parallel()

	if err := Watch(context.Background(), t.TempDir(), nil, WatchOptions{}); err == nil {
		t.Fatal("Watch() error = nil, want error")
	}
}
