// Package kvstore описывает ключ-значение хранилище, поверх которого работают
// коллекции витрины и учётные записи пользователей.
//
// Каждая коллекция хранится одной строкой (JSON-массив) под одним ключом,
// поэтому от хранилища требуется только чтение, запись и удаление по ключу,
// плюс атомарная запись «если ключа нет» для однократного заполнения демо-данными.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotImplemented возвращается хранилищем, для которого удалённый бэкенд
// выбран конфигурацией, но не подключён.
var ErrNotImplemented = errors.New("storage backend not implemented")

// Storage — минимальный контракт ключ-значение хранилища.
type Storage interface {
	// Get возвращает значение по ключу; found=false, если ключа нет.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set записывает значение целиком, перезаписывая предыдущее.
	Set(ctx context.Context, key, value string) error
	// SetIfAbsent записывает значение, только если ключа ещё нет.
	SetIfAbsent(ctx context.Context, key, value string) (stored bool, err error)
	// Remove удаляет ключ; отсутствие ключа ошибкой не считается.
	Remove(ctx context.Context, key string) error
}
