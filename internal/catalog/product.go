package catalog

// Product is the normalized record the render pipeline consumes. It is
// treated as an immutable value once built; a new fetch replaces the whole
// batch instead of mutating entries.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`     // whole pesos, the amount rendered
	ListPrice    int    `json:"listPrice"` // whole pesos
	ImageURL     string `json:"imageUrl"`  // empty triggers the placeholder
	Installments int    `json:"installments"`
	FreeShipping bool   `json:"freeShipping"`
	SKU          string `json:"sku"`
	BankPromo    string `json:"bankPromo,omitempty"`
	Pickup       bool   `json:"pickup"`
}
