package entity

// Gift is a catalog entry redeemable for tokens, keyed by an
// administrator-chosen id. An empty description means the entry does not
// exist: removal resets an entry to the zero value, so a removed gift is
// indistinguishable from one that was never added. Price 0 is legal.
type Gift struct {
	Price       uint64 `json:"price"`
	Description string `json:"description"`
}

func (g Gift) Exists() bool {
	return g.Description != ""
}
