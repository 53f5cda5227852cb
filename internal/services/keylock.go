package services

import "sync"

/*
keyLock сериализует записи по логическому ключу (обычно user_Id) в
рамках одного процесса. Это оптимизация, сокращающая гонку
"проверили-вставили" между существованием и вставкой; источник истины
по дубликатам - уникальные индексы хранилища.
*/

type keyLock struct {
	mu    sync.Mutex
	locks map[string]*keyLockEntry
}

type keyLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*keyLockEntry)}
}

// Lock захватывает мьютекс ключа, создавая его при необходимости.
func (l *keyLock) Lock(key string) {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &keyLockEntry{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

// Unlock освобождает мьютекс ключа и убирает его из карты,
// когда ожидающих больше нет.
func (l *keyLock) Unlock(key string) {
	l.mu.Lock()
	entry := l.locks[key]
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
