package keylock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_Release(t *testing.T) {
	table := NewTable()

	release, err := table.Acquire(context.Background(), "resource:1")
	require.NoError(t, err)
	release()

	// После освобождения ключ захватывается снова без ожидания
	release, err = table.Acquire(context.Background(), "resource:1")
	require.NoError(t, err)
	release()
}

func TestAcquire_SameKeySerializes(t *testing.T) {
	table := NewTable()

	release, err := table.Acquire(context.Background(), "resource:1")
	require.NoError(t, err)

	var mu sync.Mutex
	order := []string{}

	done := make(chan struct{})
	go func() {
		defer close(done)
		r, err := table.Acquire(context.Background(), "resource:1")
		assert.NoError(t, err)
		mu.Lock()
		order = append(order, "second")
		mu.Unlock()
		r()
	}()

	mu.Lock()
	order = append(order, "first")
	mu.Unlock()
	release()

	<-done
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAcquire_DifferentKeysDoNotBlock(t *testing.T) {
	table := NewTable()

	release1, err := table.Acquire(context.Background(), "resource:1")
	require.NoError(t, err)
	defer release1()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	release2, err := table.Acquire(ctx, "resource:2")
	require.NoError(t, err)
	release2()
}

func TestAcquire_ContextTimeout(t *testing.T) {
	table := NewTable()

	release, err := table.Acquire(context.Background(), "resource:1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	got, err := table.Acquire(ctx, "resource:1")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrLockWaitAborted)
}

func TestRelease_IsIdempotent(t *testing.T) {
	table := NewTable()

	release, err := table.Acquire(context.Background(), "resource:1")
	require.NoError(t, err)

	release()
	release() // повторный вызов не должен паниковать и ломать семафор

	release, err = table.Acquire(context.Background(), "resource:1")
	require.NoError(t, err)
	release()
}

func TestTable_CleansUpUnusedEntries(t *testing.T) {
	table := NewTable()

	release, err := table.Acquire(context.Background(), "resource:1")
	require.NoError(t, err)
	release()

	table.mu.Lock()
	defer table.mu.Unlock()
	assert.Empty(t, table.locks)
}

func TestAcquire_ManyGoroutinesSingleKey(t *testing.T) {
	table := NewTable()

	const workers = 20
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			release, err := table.Acquire(context.Background(), "resource:1")
			if !assert.NoError(t, err) {
				return
			}
			// Критическая секция: без блокировки здесь была бы гонка
			counter++
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)

	table.mu.Lock()
	defer table.mu.Unlock()
	assert.Empty(t, table.locks)
}
