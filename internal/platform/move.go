package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MoveContents moves every entry of src into dst, which must already exist.
// Entries are renamed when possible; when a rename fails because src and dst
// are on different devices the entry is copied and the original removed. src itself is left in place, empty.
func MoveContents(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		if err := os.Rename(from, to); err == nil {
			continue
		} else if !isCrossDevice(err) {
			return fmt.Errorf("moving %s to %s: %w", from, to, err)
		}

		if err := copyEntry(from, to); err != nil {
			return fmt.Errorf("copying %s to %s: %w", from, to, err)
		}
		if err := os.RemoveAll(from); err != nil {
			return fmt.Errorf("removing %s: %w", from, err)
		}
	}
	return nil
}

// isCrossDevice reports whether a rename failed because src and dst are on
// different devices, which a copy can work around.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

func copyEntry(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(src)
		if err != nil {
			return err
		}
		return os.Symlink(target, dst)
	case info.IsDir():
		return copyDir(src, dst, info.Mode())
	case info.Mode().IsRegular():
		return copyFile(src, dst, info.Mode())
	}
	// Skip sockets, devices and other special files.
	return nil
}

// copyDir recursively copies src to dst.
func copyDir(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(dst, mode.Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := copyEntry(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string, mode os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, mode.Perm()); err != nil {
		return err
	}
	return Chmod(dst, mode.Perm())
}
