// Package repo persists the credential record as a whole file
package repo

import (
	"context"
	"os"
	"path/filepath"

	perr "wifiman/internal/platform/errors"

	"github.com/spf13/afero"
)

// Repo reads and replaces the raw record bytes
type Repo interface {
	ReadAll(ctx context.Context) ([]byte, error)
	WriteAll(ctx context.Context, data []byte) error
	Path() string
}

// File is a Repo backed by one file on an afero filesystem
type File struct {
	fs   afero.Fs
	path string
}

// NewFile binds a record path on fs
func NewFile(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

// Path returns the record path
func (f *File) Path() string { return f.path }

// ReadAll returns the record contents; a missing file is StorageUnavailable
func (f *File) ReadAll(_ context.Context) ([]byte, error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeStorageUnavailable, "read %s", f.path), "credstore.read")
	}
	return b, nil
}

// WriteAll replaces the record by writing a sibling temp file and renaming it over
func (f *File) WriteAll(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return f.fail(err, "mkdir %s", dir)
	}
	tmp, err := afero.TempFile(f.fs, dir, "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return f.fail(err, "create temp in %s", dir)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = f.fs.Remove(name)
		return f.fail(err, "write %s", name)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = f.fs.Remove(name)
		return f.fail(err, "sync %s", name)
	}
	if err := tmp.Close(); err != nil {
		_ = f.fs.Remove(name)
		return f.fail(err, "close %s", name)
	}
	if err := f.fs.Chmod(name, 0o600); err != nil && !os.IsNotExist(err) {
		_ = f.fs.Remove(name)
		return f.fail(err, "chmod %s", name)
	}
	if err := f.fs.Rename(name, f.path); err != nil {
		_ = f.fs.Remove(name)
		return f.fail(err, "rename to %s", f.path)
	}
	return nil
}

func (f *File) fail(err error, format string, a ...any) error {
	return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeStorageUnavailable, format, a...), "credstore.write")
}
