package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"charity_token/internal/domain/entity"
	"charity_token/internal/domain/ledger"
)

func TestCatalogUpsertOverwrites(t *testing.T) {
	rq := require.New(t)

	catalog := ledger.NewCatalog()

	catalog.Upsert(1, entity.Gift{Price: 10, Description: "Book"})
	catalog.Upsert(1, entity.Gift{Price: 20, Description: "Signed book"})

	gift, ok := catalog.Lookup(1)
	rq.True(ok)
	rq.EqualValues(20, gift.Price)
	rq.Equal("Signed book", gift.Description)
}

func TestCatalogRemove(t *testing.T) {
	rq := require.New(t)

	catalog := ledger.NewCatalog()

	catalog.Upsert(1, entity.Gift{Price: 10, Description: "Book"})
	catalog.Remove(1)

	gift, ok := catalog.Lookup(1)
	rq.False(ok)
	rq.False(gift.Exists())
	rq.EqualValues(0, gift.Price)

	// Removing an id that was never added is a no-op.
	catalog.Remove(42)
}

func TestCatalogLookupUnknown(t *testing.T) {
	rq := require.New(t)

	catalog := ledger.NewCatalog()

	gift, ok := catalog.Lookup(7)
	rq.False(ok)
	rq.Equal(entity.Gift{}, gift)
}

func TestCatalogEmptyDescriptionMeansAbsent(t *testing.T) {
	rq := require.New(t)

	catalog := ledger.NewCatalog()

	// An entry whose description is empty counts as nonexistent even though
	// the map holds it: existence is defined by the description field.
	catalog.Upsert(1, entity.Gift{Price: 10, Description: ""})

	gift, ok := catalog.Lookup(1)
	rq.False(ok)
	rq.EqualValues(10, gift.Price)
}
