package kvstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// File хранит каждый ключ отдельным файлом в каталоге dir.
//
// Запись идёт через временный файл и rename, поэтому читатель никогда
// не видит частично записанное значение.
type File struct {
	mu  sync.Mutex
	dir string
}

// NewFile создаёт файловое хранилище и при необходимости сам каталог.
func NewFile(dir string) (*File, error) {
	const op = "kvstore.NewFile"
	if dir == "" {
		return nil, fmt.Errorf("%s: directory is empty", op)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

// Get читает значение ключа из файла.
func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "kvstore.File.Get"
	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return string(b), true, nil
}

// Set перезаписывает файл ключа.
func (f *File) Set(ctx context.Context, key, value string) error {
	const op = "kvstore.File.Set"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := f.writeTemp(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SetIfAbsent создаёт файл ключа, только если его ещё нет.
// os.Link не перезаписывает существующий файл, что и даёт атомарность.
func (f *File) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	const op = "kvstore.File.SetIfAbsent"
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := f.writeTemp(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = os.Remove(tmp)
	}()

	err = os.Link(tmp, f.path(key))
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Remove удаляет файл ключа.
func (f *File) Remove(ctx context.Context, key string) error {
	const op = "kvstore.File.Remove"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (f *File) writeTemp(value string) (string, error) {
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
