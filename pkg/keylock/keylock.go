package keylock

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrLockWaitAborted возвращается, когда ожидание блокировки прервано
// (истёк таймаут или контекст отменён)
var ErrLockWaitAborted = errors.New("keylock: lock wait aborted")

// Table таблица блокировок по строковому ключу
// Обращения с одинаковым ключом сериализуются, с разными - выполняются параллельно.
// Записи создаются лениво и удаляются, когда на ключ больше никто не претендует.
type Table struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	sem  chan struct{} // семафор ёмкости 1
	refs int           // количество держателей и ожидающих
}

// NewTable создает пустую таблицу блокировок
func NewTable() *Table {
	return &Table{
		locks: make(map[string]*entry),
	}
}

// Acquire захватывает блокировку по ключу
// Блокируется до захвата либо до отмены контекста (тогда ErrLockWaitAborted).
// Возвращает функцию освобождения, которую нужно вызвать ровно один раз.
func (t *Table) Acquire(ctx context.Context, key string) (func(), error) {
	t.mu.Lock()
	e, ok := t.locks[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		t.locks[key] = e
	}
	e.refs++
	t.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		released := false
		return func() {
			if released {
				return
			}
			released = true
			<-e.sem
			t.release(key, e)
		}, nil
	case <-ctx.Done():
		t.release(key, e)
		return nil, fmt.Errorf("%w: key=%s: %v", ErrLockWaitAborted, key, ctx.Err())
	}
}

// release уменьшает счётчик ссылок и убирает запись, если она больше не нужна
func (t *Table) release(key string, e *entry) {
	t.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(t.locks, key)
	}
	t.mu.Unlock()
}
