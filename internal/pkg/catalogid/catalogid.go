// Package catalogid derives public catalog entry ids from listing ids.
// The catalog and the listing store stay loosely coupled; this prefix is
// the only thing tying an entry back to its source listing, so the
// derivation lives in exactly one place.
package catalogid

import (
	"strconv"
	"strings"
)

const prefix = "new_"

func FromListing(listingID int) string {
	return prefix + strconv.Itoa(listingID)
}

func IsDerived(catalogID string) bool {
	return strings.HasPrefix(catalogID, prefix)
}
