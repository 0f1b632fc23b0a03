package segments

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestVideoIDs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vidA", "seg-1.txt"), "WEBVTT")
	writeFile(t, filepath.Join(root, "vidB", "seg-1.txt"), "WEBVTT")
	// A stray file at the root is not a video identifier.
	writeFile(t, filepath.Join(root, "notes.txt"), "ignore me")

	store := New(root, ".txt")
	ids, err := store.VideoIDs()
	if err != nil {
		t.Fatalf("VideoIDs() error = %v", err)
	}

	sort.Strings(ids)
	want := []string{"vidA", "vidB"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("VideoIDs() = %v, want %v", ids, want)
	}
}

func TestVideoIDsMissingRoot(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nonexistent"), ".txt")
	if _, err := store.VideoIDs(); err == nil {
		t.Error("VideoIDs() should return error for missing root")
	}
}

func TestSegmentFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vidA", "seg-1.txt"), "WEBVTT")
	writeFile(t, filepath.Join(root, "vidA", "seg-2.txt"), "WEBVTT")
	writeFile(t, filepath.Join(root, "vidA", "seg.vtt"), "wrong extension")
	if err := os.MkdirAll(filepath.Join(root, "vidA", "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	store := New(root, ".txt")
	files, err := store.SegmentFiles("vidA")
	if err != nil {
		t.Fatalf("SegmentFiles() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("SegmentFiles() returned %d files, want 2: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".txt" {
			t.Errorf("unexpected file %s", f)
		}
	}
}

func TestSegmentFilesMissingVideo(t *testing.T) {
	store := New(t.TempDir(), ".txt")
	if _, err := store.SegmentFiles("nope"); err == nil {
		t.Error("SegmentFiles() should return error for missing video directory")
	}
}

func TestReadSegment(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "vidA", "seg-1.txt")
	writeFile(t, path, "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHello.\n")

	store := New(root, ".txt")
	text, err := store.ReadSegment(path)
	if err != nil {
		t.Fatalf("ReadSegment() error = %v", err)
	}
	if text == "" || text[:6] != "WEBVTT" {
		t.Errorf("ReadSegment() = %q, want WEBVTT content", text)
	}

	if _, err := store.ReadSegment(filepath.Join(root, "vidA", "missing.txt")); err == nil {
		t.Error("ReadSegment() should return error for missing file")
	}
}
