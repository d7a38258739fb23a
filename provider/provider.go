package provider

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/gostonefire/itemstore"
)

// ProviderError - Custom error to inform that the data provider could not serve an item
type ProviderError struct {
	msg string
}

// Error - Used to notify that the data provider could not serve an item
func (E ProviderError) Error() string {
	if E.msg == "" {
		return "provider error"
	}
	return E.msg
}

// Word pools the catalog identifiers are built from. Every word starts with an
// uppercase letter, hence every generated identifier is well-formed.
var firstWords = []string{
	"Amber", "Burnt", "Cafe", "Deep", "Electric", "Forest", "Golden",
	"Hunter", "Ivory", "Jungle", "Midnight", "Neon", "Pale", "Royal",
	"Shadow", "Tiffany", "Velvet", "Winter",
}

var secondWords = []string{
	"Amethyst", "Blue", "Crimson", "Dusk", "Ember", "Green", "Noir",
	"Quartz", "Rose", "Yellow",
}

// DataProvider - Serves ready-made items from a finite generated catalog, either
// by identifier or at random. It is the only source of items, consumers never
// construct them themselves.
type DataProvider struct {
	catalog map[string]itemstore.Item
	ids     []string
	rnd     *rand.Rand
}

// NewDataProvider - Returns a DataProvider with a generated catalog of items.
//   - seed drives catalog timestamps and random fetch order, a value of zero or below seeds from the wall clock
func NewDataProvider(seed int64) *DataProvider {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	base := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	catalog := make(map[string]itemstore.Item, len(firstWords)*len(secondWords))
	ids := make([]string, 0, len(firstWords)*len(secondWords))

	for _, first := range firstWords {
		for _, second := range secondWords {
			id := fmt.Sprintf("%s %s", first, second)
			catalog[id] = itemstore.Item{
				ID:   id,
				Code: uuid.New().ID(),
				Time: base.Add(time.Duration(rnd.Intn(365*24)) * time.Hour).Format("2006-01-02 15:04:05"),
			}
			ids = append(ids, id)
		}
	}

	return &DataProvider{
		catalog: catalog,
		ids:     ids,
		rnd:     rnd,
	}
}

// Fetch - Returns the raw field values for one item as a ready-made Item.
//   - identifier selects the item to fetch, an empty identifier fetches a random one
//
// It returns:
//   - item is a copy of the catalog entry
//   - err is of type ProviderError if the identifier is unknown or the catalog is empty
func (P *DataProvider) Fetch(identifier string) (item itemstore.Item, err error) {
	if identifier == "" {
		if len(P.ids) == 0 {
			err = ProviderError{msg: "no items to serve"}
			return
		}
		item = P.catalog[P.ids[P.rnd.Intn(len(P.ids))]]
		return
	}

	item, ok := P.catalog[identifier]
	if !ok {
		item = itemstore.Item{}
		err = ProviderError{msg: fmt.Sprintf("no item with identifier %q", identifier)}
		return
	}

	return
}
