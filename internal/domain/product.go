package domain

// Product is an item of the store catalogue.
type Product struct {
	ID          string  `json:"id"          yaml:"id"`
	Name        string  `json:"name"        yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price"       yaml:"price"`
	Stock       int     `json:"stock"       yaml:"stock"`
	Category    string  `json:"category"    yaml:"category"`
}

// RecordID returns the store-assigned id.
func (p *Product) RecordID() string { return p.ID }

// SetRecordID sets the store-assigned id.
func (p *Product) SetRecordID(id string) { p.ID = id }

// ProductInput carries the fields of a create or update request.
type ProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
}

// NewProduct builds a product with the given id from the supplied fields only.
func NewProduct(id string, in ProductInput) Product {
	product := Product{ID: id}
	in.ApplyTo(&product)
	return product
}

// ApplyTo overwrites the fields of product that are present in the input.
func (in ProductInput) ApplyTo(product *Product) {
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
}
