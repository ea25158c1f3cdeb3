package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestBackupCopiesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "papers.db")
	dst := filepath.Join(dir, "papers.backup")

	content := []byte("sqlite file contents")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Backup(src, dst); err != nil {
		t.Fatalf("Backup: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Error("backup is not byte-identical to the source")
	}
}

func TestBackupOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "papers.db")
	dst := filepath.Join(dir, "papers.backup")

	if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("stale previous backup"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Backup(src, dst); err != nil {
		t.Fatal(err)
	}

	got, _ := os.ReadFile(dst)
	if string(got) != "new" {
		t.Errorf("backup contents = %q, want %q", got, "new")
	}
}

func TestBackupMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Backup(filepath.Join(dir, "absent.db"), filepath.Join(dir, "out"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestRestoreReplacesDatabase(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "papers.db")
	bak := filepath.Join(dir, "papers.backup")

	if err := os.WriteFile(db, []byte("current"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bak, []byte("snapshot"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Restore(bak, db); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, _ := os.ReadFile(db)
	if string(got) != "snapshot" {
		t.Errorf("database contents = %q, want %q", got, "snapshot")
	}
}
