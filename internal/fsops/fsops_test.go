package fsops_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hjerpe/coding-agent/internal/fsops"
)

func TestListTree_HiddenPrunedAndSorted(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.txt"), "a")
	mustWrite(t, filepath.Join(dir, ".git", "x"), "x")
	mustWrite(t, filepath.Join(dir, "sub", "b.txt"), "b")

	got, err := fsops.ListTree(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"a.txt", "sub/", "sub/b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected entries: got %v want %v", got, want)
	}
}

func TestListTree_HiddenFileSkipped(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, ".env"), "secret")
	mustWrite(t, filepath.Join(dir, "keep.txt"), "ok")

	got, err := fsops.ListTree(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"keep.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected entries: got %v want %v", got, want)
	}
}

func TestListTree_EmptyDirYieldsEmptySlice(t *testing.T) {
	got, err := fsops.ListTree(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestListTree_MissingDirErrors(t *testing.T) {
	if _, err := fsops.ListTree(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestReadTextFile_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "f.txt")
	mustWrite(t, p, "hello\nworld\n")
	got, err := fsops.ReadTextFile(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "hello\nworld\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestReadTextFile_BinaryRejected(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bin")
	if err := os.WriteFile(p, []byte{0x00, 0x01, 0xff, 0xfe}, 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if _, err := fsops.ReadTextFile(p); err == nil {
		t.Fatal("expected error for binary content")
	}
}

func TestReadTextFile_MissingErrors(t *testing.T) {
	if _, err := fsops.ReadTextFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deep", "nested", "f.txt")
	if err := fsops.WriteFile(p, "content"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "content" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}
}
