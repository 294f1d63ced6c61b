package atomicwriter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultPerm os.FileMode = 0644

type ContentMapFunc func(ctx context.Context, content []byte) ([]byte, error)

//go:generate go tool mockery
type Locker interface {
	Lock(ctx context.Context, key string) (context.Context, context.CancelFunc, error)
}

// AtomicWriter replaces files through a temporary file and a rename, so readers
// see either the old or the new content of a result file, never a partial one.
type AtomicWriter struct {
	Locker  Locker
	tmpPath string
}

func New(locker Locker, tmpPath string) *AtomicWriter {
	return &AtomicWriter{
		Locker:  locker,
		tmpPath: tmpPath,
	}
}

// WriteFile replaces the content of filename under its lock.
func (w *AtomicWriter) WriteFile(ctx context.Context, filename string, content []byte) error {
	return w.ReadWrite(ctx, filename, func(_ context.Context, _ []byte) ([]byte, error) {
		return content, nil
	})
}

// ReadWrite locks filename, passes its current content to contentMap and
// atomically stores the result. A missing file reads as empty and is created
// with 0644, an existing one keeps its permissions.
// The caller is responsible for ensuring that the directory of the file exists.
func (w *AtomicWriter) ReadWrite(ctx context.Context, filename string, contentMap ContentMapFunc) error {
	ctx, cancel, err := w.Locker.Lock(ctx, filename)
	if err != nil {
		return err
	}
	defer cancel()

	_, err = os.Stat(filepath.Dir(filename))
	if err != nil {
		return err
	}

	content, perm, err := readExisting(filename)
	if err != nil {
		return err
	}

	newContent, err := contentMap(ctx, content)
	if err != nil {
		return err
	}

	return w.replace(ctx, filename, newContent, perm)
}

func readExisting(filename string) ([]byte, os.FileMode, error) {
	info, err := os.Stat(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte{}, defaultPerm, nil
	}

	if err != nil {
		return nil, 0, err
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, 0, err
	}

	return content, info.Mode(), nil
}

func (w *AtomicWriter) replace(ctx context.Context, filename string, content []byte, perm os.FileMode) error {
	tempFile, err := os.CreateTemp(w.tmpPath, "atomic-writer-*.tmp")
	if err != nil {
		return err
	}
	// Remove fails harmlessly once the rename went through.
	defer os.Remove(tempFile.Name())

	defer tempFile.Close()

	_, err = tempFile.Write(content)
	if err != nil {
		return err
	}

	// The lock may have been lost while contentMap ran.
	if err := ctx.Err(); err != nil {
		return err
	}

	err = tempFile.Sync()
	if err != nil {
		return err
	}

	err = tempFile.Chmod(perm)
	if err != nil {
		return err
	}

	return os.Rename(tempFile.Name(), filename)
}
