package keys

import (
	"strings"

	"github.com/gostonefire/itemstore/internal/conf"
)

// Address - The two-level bucket address derived from an item identifier
//   - Bucket is the first letter of the identifier's first word ('A'-'Z')
//   - Chain is an index derived from the first letter of the second word ('A' -> 0 ... 'Z' -> 25)
type Address struct {
	Bucket byte
	Chain  int
}

// ParseIdentifier - Derives the two-level bucket address from an item identifier.
// A well-formed identifier is two words separated by a single space, both words starting
// with an uppercase letter A-Z, e.g. "Cafe Noir". Only the first letter of each word and
// the presence of the separating space are inspected, the rest of either word is not validated.
//   - identifier is the item identifier to parse
//
// It returns:
//   - address is the derived bucket address
//   - ok is false if the identifier is malformed, in which case address carries no meaning
func ParseIdentifier(identifier string) (address Address, ok bool) {
	if identifier == "" {
		return
	}

	first := identifier[0]
	if first < conf.FirstValidLetter || first > conf.LastValidLetter {
		return
	}

	sep := strings.IndexByte(identifier, conf.WordSeparator)
	if sep < 0 || sep == len(identifier)-1 {
		return
	}

	second := identifier[sep+1]
	if second < conf.FirstValidLetter || second > conf.LastValidLetter {
		return
	}

	address = Address{Bucket: first, Chain: int(second - conf.FirstValidLetter)}
	ok = true

	return
}
