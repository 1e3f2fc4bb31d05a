package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrNoProducts = errors.New("catalog document has no products")
	ErrMalformed  = errors.New("malformed catalog document")
)

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

type document struct {
	Products *[]Product `json:"products"`
}

// Catalog is the read-only product sequence. A product's position is its id.
type Catalog struct {
	products []Product
}

func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: extra data after json object", ErrMalformed)
	}
	if doc.Products == nil {
		return nil, ErrNoProducts
	}

	products := make([]Product, len(*doc.Products))
	for i, p := range *doc.Products {
		p.ID = i
		products[i] = p
	}
	return &Catalog{products: products}, nil
}

func New(products []Product) *Catalog {
	out := make([]Product, len(products))
	for i, p := range products {
		p.ID = i
		out[i] = p
	}
	return &Catalog{products: out}
}

func (c *Catalog) Len() int { return len(c.products) }

func (c *Catalog) At(id int) (Product, bool) {
	if id < 0 || id >= len(c.products) {
		return Product{}, false
	}
	return c.products[id], true
}

// All returns the products in catalog order. The slice is a copy.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
