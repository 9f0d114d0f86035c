package osfilesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "frame_0.bmp")

	if err := fs.WriteFile(path, []byte("BM")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "BM" {
		t.Errorf("expected %q, got %q", "BM", data)
	}
}

func TestFileSystem_WriteFileTruncates(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "frame_0.bmp")

	if err := fs.WriteFile(path, []byte("a much longer previous file")); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile(path, []byte("short")); err != nil {
		t.Fatal(err)
	}
	data, _ := fs.ReadFile(path)
	if string(data) != "short" {
		t.Errorf("expected truncated contents, got %q", data)
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "output", "nested", "frame_1.bmp")

	if err := fs.WriteFile(path, []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	exists, err := fs.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}
}

func TestFileSystem_ExistsAndRemove(t *testing.T) {
	fs := New()
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := fs.MkdirAll(dir); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if ok, _ := fs.Exists(dir); !ok {
		t.Error("expected directory to exist")
	}
	if err := fs.Remove(dir); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if ok, _ := fs.Exists(dir); ok {
		t.Error("expected directory to be removed")
	}
}

func TestFileSystem_ListDir(t *testing.T) {
	fs := New()
	dir := t.TempDir()

	for _, name := range []string{"frame_10.bmp", "frame_2.bmp", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	names, err := fs.ListDir(dir)
	if err != nil {
		t.Fatalf("ListDir failed: %v", err)
	}
	want := []string{"frame_10.bmp", "frame_2.bmp", "notes.txt"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestFileSystem_ListDirMissing(t *testing.T) {
	if _, err := New().ListDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
