package itemstore

import (
	"github.com/gostonefire/itemstore/internal/keys"
)

// Find - Searches for the item with the given identifier.
//   - identifier is the two-word item identifier, e.g. "Cafe Noir"
//
// It returns:
//   - item is a pointer to the matching item, it stays valid only until the next mutating operation on the store
//   - err is of type NotFound if no item matches; a malformed identifier is reported the same way since no chain can exist for it
func (S *ItemStore) Find(identifier string) (item *Item, err error) {
	address, ok := keys.ParseIdentifier(identifier)
	if !ok {
		err = NotFound{}
		return
	}

	b, ok := S.buckets[address.Bucket]
	if !ok {
		err = NotFound{}
		return
	}

	chain := b[address.Chain]
	for i := range chain {
		if chain[i].ID == identifier {
			item = &chain[i]
			return
		}
	}

	err = NotFound{}
	return
}

// Insert - Adds a copy of the given item to the store. The copy is placed at the
// front of its chain, hence enumeration yields the most recently inserted item
// first within a chain.
//   - item is the item to add
//
// It returns:
//   - err is of type InvalidIdentifier if the item identifier is malformed, or of type DuplicateIdentifier
//     if an item with the same identifier is already stored. The store is left untouched on failure.
func (S *ItemStore) Insert(item Item) (err error) {
	address, ok := keys.ParseIdentifier(item.ID)
	if !ok {
		err = InvalidIdentifier{}
		return
	}

	b, ok := S.buckets[address.Bucket]
	if !ok {
		b = &chains{}
		S.buckets[address.Bucket] = b
	}

	chain := b[address.Chain]
	for i := range chain {
		if chain[i].ID == item.ID {
			err = DuplicateIdentifier{}
			return
		}
	}

	b[address.Chain] = append([]Item{item}, chain...)

	return
}

// Remove - Removes the item with the given identifier from the store, leaving the
// relative order of the remaining chain unchanged. Emptied chains and buckets are
// kept as empty structures, they are not pruned.
//   - identifier is the two-word item identifier
//
// It returns:
//   - err is of type InvalidIdentifier if the identifier is malformed, or of type NotFound
//     if no stored item matches. The store is left untouched on failure.
func (S *ItemStore) Remove(identifier string) (err error) {
	address, ok := keys.ParseIdentifier(identifier)
	if !ok {
		err = InvalidIdentifier{}
		return
	}

	b, ok := S.buckets[address.Bucket]
	if !ok {
		err = NotFound{}
		return
	}

	chain := b[address.Chain]
	for i := range chain {
		if chain[i].ID == identifier {
			b[address.Chain] = append(chain[:i], chain[i+1:]...)
			return
		}
	}

	err = NotFound{}
	return
}
