package itemstore

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/gostonefire/itemstore/internal/conf"
)

// Item - A single stored item. Identity and equality are defined solely by the
// identifier, the code and timestamp are payload carried along with it.
// Items are value types, assigning one produces an independent copy.
//   - ID is the item identifier on the form "FirstWord SecondWord", e.g. "Cafe Noir"
//   - Code is a numeric code associated with the item
//   - Time is the item timestamp in textual form
type Item struct {
	ID   string
	Code uint32
	Time string
}

// Equal - Returns true if the two items have equal identifiers, byte for byte.
// Two items both lacking an identifier count as equal.
func (I Item) Equal(other Item) bool {
	return I.ID == other.ID
}

// String - Returns the item identifier
func (I Item) String() string {
	return I.ID
}

// chains - The 26 collision chains held by one bucket, indexed by the letter
// derived from the first letter of the second word in an item identifier.
type chains [conf.ChainsPerBucket][]Item

// ItemStore - A two-level bucketed container for items keyed by two-word identifiers.
// The first level maps the first letter of an identifier's first word to a bucket,
// the second level indexes the bucket's 26 chains by the first letter of the second
// word. The store provides no internal synchronization, callers sharing one between
// goroutines must serialize access externally.
type ItemStore struct {
	buckets map[byte]*chains
}

// New - Returns a new empty ItemStore
func New() *ItemStore {
	return &ItemStore{buckets: make(map[byte]*chains)}
}

// Count - Returns the total number of items over every chain in every bucket
func (S *ItemStore) Count() (count int) {
	for _, b := range S.buckets {
		for i := range b {
			count += len(b[i])
		}
	}

	return
}

// ItemStoreStat - Statistics on the overall usage and distribution over buckets
//   - Items is the total number of items stored
//   - ChainDistribution is the number of items in each chain per first-level key, including buckets whose chains have all been emptied
type ItemStoreStat struct {
	Items             int
	ChainDistribution map[byte][conf.ChainsPerBucket]int
}

// Stat - Walks through the entire set of buckets and produces an ItemStoreStat struct with information.
//   - includeDistribution set to true fills ChainDistribution with one entry per bucket ever created, false leaves it nil
func (S *ItemStore) Stat(includeDistribution bool) (stat *ItemStoreStat) {
	stat = &ItemStoreStat{}
	if includeDistribution {
		stat.ChainDistribution = make(map[byte][conf.ChainsPerBucket]int, len(S.buckets))
	}

	for key, b := range S.buckets {
		var dist [conf.ChainsPerBucket]int
		for i := range b {
			stat.Items += len(b[i])
			dist[i] = len(b[i])
		}
		if includeDistribution {
			stat.ChainDistribution[key] = dist
		}
	}

	return
}

// String - Returns every stored item identifier in enumeration order, one per line
func (S *ItemStore) String() string {
	var sb strings.Builder

	iter := S.Items()
	for iter.HasNext() {
		item, err := iter.Next()
		if err != nil {
			break
		}
		sb.WriteString(item.ID)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// sortedKeys - Returns the first-level keys present in the store in ascending order
func (S *ItemStore) sortedKeys() (keys []byte) {
	keys = make([]byte, 0, len(S.buckets))
	for key := range S.buckets {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return
}
