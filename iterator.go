package itemstore

// Items - Is used to iterate over stored items one by one in enumeration order:
// buckets in ascending first-level key order, chains 0-25 within a bucket, and
// front to back within a chain (most recently inserted first). The iterator reads
// live storage, mutating the store while iterating gives undefined results.
type Items struct {
	store    *ItemStore
	keys     []byte
	keyIdx   int
	chainIdx int
	pos      int
}

// Items - Returns an iterator over every stored item
func (S *ItemStore) Items() *Items {
	return &Items{
		store: S,
		keys:  S.sortedKeys(),
	}
}

// HasNext - Returns true if there are more items to be fetched from a call to Next
func (I *Items) HasNext() bool {
	for I.keyIdx < len(I.keys) {
		b := I.store.buckets[I.keys[I.keyIdx]]
		for I.chainIdx < len(b) {
			if I.pos < len(b[I.chainIdx]) {
				return true
			}
			I.chainIdx++
			I.pos = 0
		}
		I.keyIdx++
		I.chainIdx = 0
		I.pos = 0
	}

	return false
}

// Next - Returns the next item.
// It returns:
//   - item is a pointer to the next stored item, it stays valid only until the next mutating operation on the store
//   - err is of type NotFound when the iterator is exhausted
func (I *Items) Next() (item *Item, err error) {
	if !I.HasNext() {
		err = NotFound{}
		return
	}

	chain := I.store.buckets[I.keys[I.keyIdx]][I.chainIdx]
	item = &chain[I.pos]
	I.pos++

	return
}
