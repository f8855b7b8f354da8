package repository

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventRepo_MergePrepends(t *testing.T) {
	repo := NewMemoryEventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		added, err := repo.Merge(ctx, &domain.Event{ID: id})
		require.NoError(t, err)
		assert.True(t, added)
	}

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "c", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, "a", events[2].ID)
}

func TestMemoryEventRepo_MergeSkipsKnownID(t *testing.T) {
	repo := NewMemoryEventRepo()
	ctx := context.Background()

	added, err := repo.Merge(ctx, &domain.Event{ID: "a", Title: "first"})
	require.NoError(t, err)
	require.True(t, added)

	added, err = repo.Merge(ctx, &domain.Event{ID: "a", Title: "second"})
	require.NoError(t, err)
	assert.False(t, added)

	e, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", e.Title)
}

func TestMemoryEventRepo_SetsCreatedAt(t *testing.T) {
	repo := NewMemoryEventRepo()
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	_, err := repo.Merge(ctx, &domain.Event{ID: "a"})
	require.NoError(t, err)

	given := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = repo.Merge(ctx, &domain.Event{ID: "b", CreatedAt: given})
	require.NoError(t, err)

	a, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, fixed, a.CreatedAt)

	b, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, given, b.CreatedAt)
}

func TestMemoryEventRepo_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryEventRepo()

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestMemoryEventRepo_ReturnsCopies(t *testing.T) {
	repo := NewMemoryEventRepo()
	ctx := context.Background()

	in := &domain.Event{ID: "a", Title: "Feria"}
	_, err := repo.Merge(ctx, in)
	require.NoError(t, err)
	in.Title = "mutated"

	events, err := repo.List(ctx)
	require.NoError(t, err)
	events[0].Title = "mutated too"

	e, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Feria", e.Title)
}

func TestMemoryEventRepo_CreateRejectsDuplicateKey(t *testing.T) {
	repo := NewMemoryEventRepo()
	ctx := context.Background()

	added, err := repo.Create(ctx, &domain.Event{
		ID: "a", Title: "Feria", Place: "Plaza", Description: "d", Date: "12/10", Image: "x",
	})
	require.NoError(t, err)
	require.True(t, added)

	added, err = repo.Create(ctx, &domain.Event{
		ID: "b", Title: "Feria", Place: "Plaza", Description: "d", Date: "12/10", Image: "y",
	})
	require.NoError(t, err)
	assert.False(t, added)

	added, err = repo.Create(ctx, &domain.Event{
		ID: "c", Title: "Feria", Place: "Plaza", Description: "d", Date: "13/10",
	})
	require.NoError(t, err)
	assert.True(t, added)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemoryEventRepo_CreateRejectsKnownID(t *testing.T) {
	repo := NewMemoryEventRepo()
	ctx := context.Background()

	_, err := repo.Merge(ctx, &domain.Event{ID: "a", Title: "Feria"})
	require.NoError(t, err)

	added, err := repo.Create(ctx, &domain.Event{ID: "a", Title: "Concierto"})
	require.NoError(t, err)
	assert.False(t, added)
}

func TestMemoryEventRepo_MergeIgnoresDuplicateKey(t *testing.T) {
	repo := NewMemoryEventRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Event{ID: "a", Title: "Feria", Place: "Plaza"})
	require.NoError(t, err)

	added, err := repo.Merge(ctx, &domain.Event{ID: "b", Title: "Feria", Place: "Plaza"})
	require.NoError(t, err)
	assert.True(t, added)
}

func TestMemoryEventRepo_ConcurrentCreateSameKey(t *testing.T) {
	ctx := context.Background()

	for round := 0; round < 200; round++ {
		repo := NewMemoryEventRepo()
		start := make(chan struct{})

		var wg sync.WaitGroup
		var mu sync.Mutex
		created := 0
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				runtime.Gosched()
				added, err := repo.Create(ctx, &domain.Event{
					ID: fmt.Sprintf("r%d-%d", round, i), Title: "Feria", Place: "Plaza", Description: "d", Date: "12/10",
				})
				assert.NoError(t, err)
				if added {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}(i)
		}
		close(start)
		wg.Wait()

		require.Equal(t, 1, created, "round %d", round)
	}
}

func TestMemoryEventRepo_ConcurrentMerge(t *testing.T) {
	repo := NewMemoryEventRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Merge(ctx, &domain.Event{ID: fmt.Sprintf("e%d", i%10)})
		}(i)
	}
	wg.Wait()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}
