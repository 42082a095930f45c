package filesystems

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMemoryFS_AddFile(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddFile("/app/test.txt", []byte("hello world"))

	result, err := mfs.ReadFile("/app/test.txt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(result) != "hello world" {
		t.Fatalf("expected 'hello world', got '%s'", string(result))
	}
}

func TestMemoryFS_AddFile_CreatesParentDirs(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddFile("/dir1/dir2/test.txt", []byte("content"))

	info, err := mfs.Stat("/dir1/dir2")
	if err != nil {
		t.Fatalf("expected parent directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("expected /dir1/dir2 to be a directory")
	}
}

func TestMemoryFS_ReadFile_NotFound(t *testing.T) {
	mfs := NewMemoryFS()

	_, err := mfs.ReadFile("/nonexistent.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMemoryFS_Stat(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddFile("/srv/config.yml", []byte("a: b"))

	info, err := mfs.Stat("/srv/config.yml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.IsDir() {
		t.Error("expected a file")
	}
	if info.Size() != 4 {
		t.Errorf("expected size 4, got %d", info.Size())
	}

	if _, err := mfs.Stat("/srv/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMemoryFS_MkdirAll(t *testing.T) {
	mfs := NewMemoryFS()

	if err := mfs.MkdirAll("/a/b/c", 0755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, dir := range []string{"/a", "/a/b", "/a/b/c"} {
		info, err := mfs.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected %s to be a directory", dir)
		}
	}

	// creating an existing directory is a no-op
	if err := mfs.MkdirAll("/a/b/c", 0755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mfs.Mkdirs(); len(got) != 1 || got[0] != "/a/b/c" {
		t.Errorf("expected a single creation of /a/b/c, got %v", got)
	}
}

func TestMemoryFS_MkdirAll_BlockedByFile(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddFile("/a/file", []byte("x"))

	if err := mfs.MkdirAll("/a/file/sub", 0755); err == nil {
		t.Fatal("expected an error when a file is in the way")
	}
}

func TestMemoryFS_FailMkdir(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.FailMkdir("/locked", fs.ErrPermission)

	err := mfs.MkdirAll("/locked", 0755)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected fs.ErrPermission, got %v", err)
	}
}

func TestLocalFS_MkdirAllAndStat(t *testing.T) {
	lfs := NewLocalFS()
	dir := lfs.Join(t.TempDir(), "x", "y")

	if err := lfs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := lfs.Stat(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
	if !lfs.IsAbs(dir) {
		t.Error("expected temp dir path to be absolute")
	}
}

func TestDryRunFS_RecordsMkdirAll(t *testing.T) {
	base := NewMemoryFS()
	base.AddFile("/srv/app.conf", []byte("x"))
	dfs := NewDryRunFS(base)

	if err := dfs.MkdirAll("/srv/data", 0755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := dfs.Mkdirs(); len(got) != 1 || got[0] != "/srv/data" {
		t.Errorf("expected /srv/data to be recorded, got %v", got)
	}
	if len(base.Mkdirs()) != 0 {
		t.Errorf("expected base filesystem to be untouched, got %v", base.Mkdirs())
	}
	if _, err := dfs.ReadFile("/srv/app.conf"); err != nil {
		t.Errorf("expected reads to pass through, got %v", err)
	}
}
