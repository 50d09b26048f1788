package catalog

import "sync"

// Batch holds the current normalized product list. Each successful fetch
// replaces the whole list; individual products are never mutated after
// construction.
type Batch struct {
	mu       sync.RWMutex
	products []Product
}

func (b *Batch) Replace(products []Product) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products = products
}

func (b *Batch) Clear() {
	b.Replace(nil)
}

func (b *Batch) List() []Product {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Product, len(b.products))
	copy(out, b.products)
	return out
}

func (b *Batch) Get(id string) (Product, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, p := range b.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
