package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowcore/domain/knowledge"
	apperrors "knowcore/pkg/errors"
)

func newUnit(t *testing.T, author, content string) *knowledge.Unit {
	t.Helper()
	unit, err := knowledge.NewUnit(author, content, []string{"test"})
	require.NoError(t, err)
	return unit
}

func TestStoreSaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewKnowledgeStore()
	unit := newUnit(t, "author-1", "some content")

	require.NoError(t, store.Save(ctx, unit))

	found, err := store.FindByID(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, unit.ID, found.ID)
	assert.Equal(t, "some content", found.ContentText)
}

func TestStoreFindMissing(t *testing.T) {
	store := NewKnowledgeStore()

	_, err := store.FindByID(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewKnowledgeStore()
	unit := newUnit(t, "author-1", "original")

	require.NoError(t, store.Save(ctx, unit))

	// Mutating what the caller saved or read back must not touch the store.
	unit.ContentText = "mutated after save"

	found, err := store.FindByID(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", found.ContentText)

	found.Tags[0] = "mutated"
	again, err := store.FindByID(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, "test", again.Tags[0])
}

func TestStoreFindAllAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewKnowledgeStore()

	a := newUnit(t, "author-1", "first")
	b := newUnit(t, "author-2", "second")
	require.NoError(t, store.Save(ctx, a))
	require.NoError(t, store.Save(ctx, b))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, store.Delete(ctx, a.ID))
	assert.Equal(t, 1, store.Len())

	err = store.Delete(ctx, a.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestStoreConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	store := NewKnowledgeStore()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				unit, err := knowledge.NewUnit(fmt.Sprintf("author-%d", w), "content", nil)
				if err != nil {
					t.Error(err)
					return
				}
				if err := store.Save(ctx, unit); err != nil {
					t.Error(err)
					return
				}
				if _, err := store.FindByID(ctx, unit.ID); err != nil {
					t.Error(err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 400, store.Len())
}
