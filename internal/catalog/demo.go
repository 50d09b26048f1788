package catalog

// DemoProduct is the built-in record installed at startup and whenever the
// upstream catalog cannot be reached, so the canvas can still be exercised
// end to end.
func DemoProduct() Product {
	return Product{
		ID:           "demo",
		Name:         "Smart TV 65\" 4K UHD",
		Price:        6199999,
		ListPrice:    6999999,
		ImageURL:     "",
		Installments: 12,
		FreeShipping: true,
		SKU:          "DEMO-0001",
		Pickup:       true,
	}
}
