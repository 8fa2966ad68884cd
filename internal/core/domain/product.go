package domain

// Product is a catalog record. Name is the unique key.
type Product struct {
	Name     string  `json:"product_name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}
