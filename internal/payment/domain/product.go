package domain

import (
	"fmt"
)

// PaymentProduct is the immutable set of field definitions a request is built
// against. Field order is preserved for validation and display.
type PaymentProduct struct {
	ID     string
	fields []*FieldDefinition
	index  map[string]*FieldDefinition
}

// NewPaymentProduct builds a product from its field definitions. It rejects an
// empty product id, nil definitions and duplicate field ids.
func NewPaymentProduct(id string, fields []*FieldDefinition) (*PaymentProduct, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty product id", ErrInvalidProduct)
	}

	index := make(map[string]*FieldDefinition, len(fields))
	for i, f := range fields {
		if f == nil || f.ID == "" {
			return nil, fmt.Errorf("%w: field %d has no id", ErrInvalidProduct, i)
		}
		if _, exists := index[f.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidProduct, f.ID)
		}
		index[f.ID] = f
	}

	return &PaymentProduct{
		ID:     id,
		fields: append([]*FieldDefinition(nil), fields...),
		index:  index,
	}, nil
}

// Field returns the definition with the given id.
func (p *PaymentProduct) Field(id string) (*FieldDefinition, bool) {
	f, ok := p.index[id]
	return f, ok
}

// Fields returns the definitions in product order.
func (p *PaymentProduct) Fields() []*FieldDefinition {
	return append([]*FieldDefinition(nil), p.fields...)
}
