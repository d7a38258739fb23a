//go:build unit

package itemstore

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemStore_Insert(t *testing.T) {
	t.Run("stores an item", func(t *testing.T) {
		// Prepare
		store := New()

		// Execute
		err := store.Insert(Item{ID: "Cafe Noir", Code: 42, Time: "2023-01-01 10:00:00"})

		// Check
		assert.NoError(t, err, "inserts item")
		assert.Equal(t, 1, store.Count(), "count increased by one")

		item, err := store.Find("Cafe Noir")
		assert.NoError(t, err, "finds inserted item")
		assert.Equal(t, "Cafe Noir", item.ID, "correct identifier")
		assert.Equal(t, uint32(42), item.Code, "correct code")
	})

	t.Run("stores an independent copy", func(t *testing.T) {
		// Prepare
		store := New()
		original := Item{ID: "Cafe Noir", Code: 42}
		assert.NoError(t, store.Insert(original))

		// Execute
		original.Code = 99

		// Check
		item, err := store.Find("Cafe Noir")
		assert.NoError(t, err, "finds inserted item")
		assert.Equal(t, uint32(42), item.Code, "stored copy unaffected by caller mutation")
	})

	t.Run("rejects malformed identifier", func(t *testing.T) {
		// Prepare
		store := New()

		// Execute
		err := store.Insert(Item{ID: "cafe Noir"})

		// Check
		assert.True(t, errors.Is(err, InvalidIdentifier{}), "invalid identifier reported")
		assert.Equal(t, 0, store.Count(), "store untouched")
	})

	t.Run("rejects duplicate identifier", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Cafe Noir", Code: 1}))

		// Execute
		err := store.Insert(Item{ID: "Cafe Noir", Code: 2})

		// Check
		assert.True(t, errors.Is(err, DuplicateIdentifier{}), "duplicate identifier reported")
		assert.Equal(t, 1, store.Count(), "count unchanged")

		item, err := store.Find("Cafe Noir")
		assert.NoError(t, err, "original item still stored")
		assert.Equal(t, uint32(1), item.Code, "original item not replaced")
	})

	t.Run("places new items at the chain front", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Alpha Young"}))
		assert.NoError(t, store.Insert(Item{ID: "Alpha Yellow"}))

		// Execute
		iter := store.Items()
		first, errFirst := iter.Next()
		second, errSecond := iter.Next()

		// Check
		assert.NoError(t, errFirst, "first item fetched")
		assert.NoError(t, errSecond, "second item fetched")
		assert.Equal(t, "Alpha Yellow", first.ID, "most recently inserted comes first in the chain")
		assert.Equal(t, "Alpha Young", second.ID, "earlier insert follows")
	})
}

func TestItemStore_Find(t *testing.T) {
	t.Run("reports not found for unknown identifier", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Cafe Noir"}))

		// Execute
		item, err := store.Find("Cafe Crema")

		// Check
		assert.True(t, errors.Is(err, NotFound{}), "not found reported")
		assert.Nil(t, item, "no item returned")
	})

	t.Run("reports not found for unpopulated bucket", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Cafe Noir"}))

		// Execute
		_, err := store.Find("Tiffany Blue")

		// Check
		assert.True(t, errors.Is(err, NotFound{}), "not found reported")
	})

	t.Run("treats malformed identifier as not found", func(t *testing.T) {
		// Prepare
		store := New()

		// Execute
		_, err := store.Find("Cafe ")

		// Check
		assert.True(t, errors.Is(err, NotFound{}), "malformed identifier indistinguishable from a miss")
	})

	t.Run("does not mutate the store", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Cafe Noir"}))

		// Execute
		_, _ = store.Find("Cafe Noir")
		_, _ = store.Find("Cafe Crema")

		// Check
		assert.Equal(t, 1, store.Count(), "count unchanged")
	})
}

func TestItemStore_Remove(t *testing.T) {
	t.Run("removes a stored item", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Cafe Noir"}))

		// Execute
		err := store.Remove("Cafe Noir")

		// Check
		assert.NoError(t, err, "removes item")
		assert.Equal(t, 0, store.Count(), "count decreased by one")

		_, err = store.Find("Cafe Noir")
		assert.True(t, errors.Is(err, NotFound{}), "removed item no longer found")
	})

	t.Run("fails a second removal of the same identifier", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Cafe Noir"}))
		assert.NoError(t, store.Remove("Cafe Noir"))

		// Execute
		err := store.Remove("Cafe Noir")

		// Check
		assert.True(t, errors.Is(err, NotFound{}), "second removal reports not found")
		assert.Equal(t, 0, store.Count(), "count reflects exactly one removal")
	})

	t.Run("rejects malformed identifier", func(t *testing.T) {
		// Prepare
		store := New()

		// Execute
		err := store.Remove("Cafe")

		// Check
		assert.True(t, errors.Is(err, InvalidIdentifier{}), "invalid identifier reported")
	})

	t.Run("reports not found for unpopulated bucket", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Cafe Noir"}))

		// Execute
		err := store.Remove("Tiffany Blue")

		// Check
		assert.True(t, errors.Is(err, NotFound{}), "not found reported")
		assert.Equal(t, 1, store.Count(), "store untouched")
	})

	t.Run("preserves order of the remaining chain", func(t *testing.T) {
		// Prepare
		store := New()
		assert.NoError(t, store.Insert(Item{ID: "Alpha Yarn"}))
		assert.NoError(t, store.Insert(Item{ID: "Alpha Yellow"}))
		assert.NoError(t, store.Insert(Item{ID: "Alpha Young"}))

		// Execute
		err := store.Remove("Alpha Yellow")

		// Check
		assert.NoError(t, err, "removes middle item")
		assert.Equal(t, "Alpha Young\nAlpha Yarn\n", store.String(), "relative order of remainder unchanged")
	})
}

func TestItemStore_CountConsistency(t *testing.T) {
	t.Run("count follows interleaved inserts and removes", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))

		identifiers := make([]string, 0, 26*26)
		for first := 'A'; first <= 'Z'; first++ {
			for second := 'A'; second <= 'Z'; second++ {
				identifiers = append(identifiers, fmt.Sprintf("%cord %cey", first, second))
			}
		}

		store := New()
		present := make(map[string]bool)
		inserted, removed := 0, 0

		// Execute
		for i := 0; i < 5000; i++ {
			id := identifiers[rnd.Intn(len(identifiers))]
			if rnd.Intn(2) == 0 {
				err := store.Insert(Item{ID: id, Code: uint32(i)})
				if present[id] {
					assert.True(t, errors.Is(err, DuplicateIdentifier{}), "duplicate insert fails")
				} else {
					assert.NoError(t, err, "insert succeeds")
					present[id] = true
					inserted++
				}
			} else {
				err := store.Remove(id)
				if present[id] {
					assert.NoError(t, err, "remove succeeds")
					present[id] = false
					removed++
				} else {
					assert.True(t, errors.Is(err, NotFound{}), "removing absent item fails")
				}
			}
		}

		// Check
		assert.Equal(t, inserted-removed, store.Count(), "count equals successful inserts minus successful removes")
	})
}
