package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&models.SequenceModel{}))
	return gdb
}

func TestDBAllocator_StrictlyIncreasing(t *testing.T) {
	alloc := NewDBAllocator(setupTestDB(t))
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		v, err := alloc.Next(ctx, "request")
		require.NoError(t, err)
		assert.Greater(t, v, prev)
		prev = v
	}
	assert.Equal(t, int64(5), prev)

	other, err := alloc.Next(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestDBAllocator_ConcurrentCallersGetDistinctValues(t *testing.T) {
	alloc := NewDBAllocator(setupTestDB(t))
	ctx := context.Background()

	const n = 20
	values := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := alloc.Next(ctx, "request")
			assert.NoError(t, err)
			values <- v
		}()
	}
	wg.Wait()
	close(values)

	seen := map[int64]bool{}
	for v := range values {
		assert.False(t, seen[v], "duplicate value %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, n)
}

func TestRedisAllocator_SeedsOnce(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	calls := 0
	alloc := NewRedisAllocator(client, func(context.Context) (int64, error) {
		calls++
		return 41, nil
	})

	v, err := alloc.Next(ctx, "request")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = alloc.Next(ctx, "request")
	require.NoError(t, err)
	assert.Equal(t, int64(43), v)
	assert.Equal(t, 1, calls)
}
