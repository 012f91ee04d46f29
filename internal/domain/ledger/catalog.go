package ledger

import (
	"charity_token/internal/domain/entity"
)

// Catalog is the owner-curated mapping from gift id to gift. Absence is
// encoded as the zero value: removing an entry resets it rather than
// tombstoning it, so Lookup treats an empty description as "no such gift".
type Catalog struct {
	gifts map[int64]entity.Gift
}

func NewCatalog() *Catalog {
	return &Catalog{
		gifts: make(map[int64]entity.Gift),
	}
}

// Upsert overwrites unconditionally; re-adding an id replaces the entry.
func (c *Catalog) Upsert(id int64, gift entity.Gift) {
	c.gifts[id] = gift
}

// Remove clears the entry to the zero value. A removed gift is
// indistinguishable from one that never existed.
func (c *Catalog) Remove(id int64) {
	delete(c.gifts, id)
}

// Lookup returns the gift and whether it exists. The returned gift is the
// stored zero value when ok is false, so callers that need the raw entry
// (price included) still get it.
func (c *Catalog) Lookup(id int64) (entity.Gift, bool) {
	gift := c.gifts[id]
	return gift, gift.Exists()
}
