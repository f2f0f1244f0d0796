package kvstore

import "context"

// Unimplemented — явный вариант хранилища для выбранного, но не подключённого
// удалённого бэкенда. Любая операция возвращает ErrNotImplemented.
type Unimplemented struct{}

// Get всегда возвращает ErrNotImplemented.
func (Unimplemented) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrNotImplemented
}

// Set всегда возвращает ErrNotImplemented.
func (Unimplemented) Set(context.Context, string, string) error {
	return ErrNotImplemented
}

// SetIfAbsent всегда возвращает ErrNotImplemented.
func (Unimplemented) SetIfAbsent(context.Context, string, string) (bool, error) {
	return false, ErrNotImplemented
}

// Remove всегда возвращает ErrNotImplemented.
func (Unimplemented) Remove(context.Context, string) error {
	return ErrNotImplemented
}
