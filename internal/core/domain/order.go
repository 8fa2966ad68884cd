package domain

// OrderLine is one requested item in an order. Transient: never persisted.
type OrderLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// OrderResult carries the priced total of a fully resolved order.
type OrderResult struct {
	Total float64 `json:"cost"`
}

// SearchResult is a catalog product enriched with the username that last
// touched it, per the audit log.
type SearchResult struct {
	Product
	LastModifiedBy string `json:"last_mod"`
}
