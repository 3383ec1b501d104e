package database

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ==================== BACKUP OPERATIONS ====================

const sqliteHeader = "SQLite format 3\x00"

// BackupFileName names a backup taken at t.
func BackupFileName(t time.Time) string {
	return "aistudy_bak_" + t.Format("060102_150405") + ".db"
}

// Backup copies the data file to dst. Connections are never held between
// operations, so the file on disk is complete whenever no call is running.
func (g *Gateway) Backup(dst string) error {
	if _, err := os.Stat(g.path); err != nil {
		return fmt.Errorf("backup source: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	return copyFile(g.path, dst)
}

// Restore replaces the data file with src after checking that src is a
// SQLite database.
func (g *Gateway) Restore(src string) error {
	if err := checkSQLiteFile(src); err != nil {
		return err
	}
	return copyFile(src, g.path)
}

func checkSQLiteFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("restore source: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteHeader))
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("%w: %s", ErrNotSQLiteFile, path)
	}
	if !bytes.Equal(header, []byte(sqliteHeader)) {
		return fmt.Errorf("%w: %s", ErrNotSQLiteFile, path)
	}
	return nil
}

// copyFile writes through a temp file in the destination directory and
// renames it into place, so dst is never left half written.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".tmp-"+filepath.Base(dst)+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, dst)
}
