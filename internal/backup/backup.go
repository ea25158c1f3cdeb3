// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package backup copies the catalog database file whole to and from a
// caller-specified path. It must not run concurrently with a write; the
// single-process design makes that the caller's responsibility.
package backup

import (
	"fmt"
	"io"
	"os"
)

// Backup copies the database file at dbPath to destPath, overwriting any
// existing file there.
func Backup(dbPath, destPath string) error {
	if err := copyFile(dbPath, destPath); err != nil {
		return fmt.Errorf("backing up database: %w", err)
	}
	return nil
}

// Restore replaces the database file at dbPath with the backup at srcPath.
// Any open store on dbPath must be closed first.
func Restore(srcPath, dbPath string) error {
	if err := copyFile(srcPath, dbPath); err != nil {
		return fmt.Errorf("restoring database: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
