package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/agil-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{Email: " Alice@Example.com ", FullName: "Alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "alice@example.com", created.Email)

	found, err := repo.FindUserByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created, *found)
}

func TestMemoryUserRepository_FindMissing(t *testing.T) {
	found, err := NewMemoryUserRepository().FindUserByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryUserRepository_Duplicate(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Email: "BOB@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Equal(t, 1, repo.Len())
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Email: "c@example.com", FullName: "C"})
	require.NoError(t, err)

	found, err := repo.FindUserByEmail(ctx, "c@example.com")
	require.NoError(t, err)
	found.FullName = "mutated"

	again, err := repo.FindUserByEmail(ctx, "c@example.com")
	require.NoError(t, err)
	assert.Equal(t, "C", again.FullName)
}

func TestMemoryUserRepository_ConcurrentSameEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	const workers = 50
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		dupes     atomic.Int32
	)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateUser(ctx, models.User{Email: "race@example.com", Username: fmt.Sprint(i)})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrEmailAlreadyExists):
				dupes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(workers-1), dupes.Load())
	assert.Equal(t, 1, repo.Len())
}

func TestMemoryUserRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryUserRepository()

	_, err := repo.CreateUser(ctx, models.User{Email: "x@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Ping(ctx), context.Canceled)
	assert.Equal(t, 0, repo.Len())
}
