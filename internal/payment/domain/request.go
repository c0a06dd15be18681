package domain

import (
	"fmt"
	"sync"
)

// RequestField is a snapshot of one field of a PaymentRequest taken when it was
// fetched. ReadOnly reflects the account on file bound at that moment; after
// SetAccountOnFile callers must fetch the field again instead of trusting an
// older snapshot.
type RequestField struct {
	Definition *FieldDefinition
	Value      string
	HasValue   bool
	ReadOnly   bool
}

// requestField is the mutable cell held by the store.
type requestField struct {
	definition *FieldDefinition
	value      *string
	readOnly   bool
}

func (f *requestField) snapshot() RequestField {
	rf := RequestField{Definition: f.definition, ReadOnly: f.readOnly}
	if f.value != nil {
		rf.Value = *f.value
		rf.HasValue = true
	}
	return rf
}

// PaymentRequest holds the values a user entered for a payment product,
// optionally on top of an account on file.
//
// It is safe for concurrent use. Value, Values, MaskedValue, AccountOnFile,
// Tokenize and Snapshot share a read lock; Field, SetValue, SetAccountOnFile,
// SetTokenize, Validate and ValidateAndSnapshot take the write lock. Field is a
// writer because it creates the cell on first access.
//
// Invariants: every held field exists on the product, and no field the bound
// account on file marks read-only holds a value.
type PaymentRequest struct {
	product *PaymentProduct

	mu            sync.RWMutex
	fields        map[string]*requestField
	accountOnFile *AccountOnFile
	tokenize      bool
}

// NewPaymentRequest creates an empty request for product.
func NewPaymentRequest(product *PaymentProduct) (*PaymentRequest, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: nil product", ErrInvalidProduct)
	}
	return &PaymentRequest{
		product: product,
		fields:  make(map[string]*requestField),
	}, nil
}

// Product returns the payment product the request is bound to.
func (r *PaymentRequest) Product() *PaymentProduct {
	return r.product
}

// Field returns a snapshot of the field, creating it on first access. It fails
// with ErrFieldNotFound when the product has no such field.
func (r *PaymentRequest) Field(id string) (RequestField, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.fieldLocked(id)
	if err != nil {
		return RequestField{}, err
	}
	return f.snapshot(), nil
}

// fieldLocked returns the cell for id, creating it if needed. Caller holds the write lock.
func (r *PaymentRequest) fieldLocked(id string) (*requestField, error) {
	if f, ok := r.fields[id]; ok {
		return f, nil
	}
	def, ok := r.product.Field(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, id)
	}
	f := &requestField{definition: def, readOnly: r.isReadOnlyLocked(id)}
	r.fields[id] = f
	return f, nil
}

func (r *PaymentRequest) isReadOnlyLocked(id string) bool {
	return r.accountOnFile != nil && r.accountOnFile.IsReadOnly(id)
}

// SetValue stores the raw form of value for the field. Masked input is accepted
// and unformatted; the empty string clears the value. It fails with
// ErrFieldNotFound or ErrFieldReadOnly without changing the request.
func (r *PaymentRequest) SetValue(id, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	def, ok := r.product.Field(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, id)
	}

	f, held := r.fields[id]
	readOnly := held && f.readOnly
	if !held {
		readOnly = r.isReadOnlyLocked(id)
	}
	if readOnly {
		return fmt.Errorf("%w: %s", ErrFieldReadOnly, id)
	}

	if !held {
		f = &requestField{definition: def}
		r.fields[id] = f
	}

	raw := def.RemoveMask(value)
	if raw == "" {
		f.value = nil
		return nil
	}
	f.value = &raw
	return nil
}

// Value returns the raw value stored for the field.
func (r *PaymentRequest) Value(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fields[id]
	if !ok || f.value == nil {
		return "", false
	}
	return *f.value, true
}

// MaskedValue returns the stored value formatted with the field mask.
func (r *PaymentRequest) MaskedValue(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fields[id]
	if !ok || f.value == nil {
		return "", false
	}
	return f.definition.ApplyMask(*f.value), true
}

// RequestSnapshot is a consistent copy of the request state taken under a
// single lock: no value in Values belongs to a field AccountOnFile marks
// read-only.
type RequestSnapshot struct {
	ProductID     string
	Values        map[string]string
	AccountOnFile *AccountOnFile
	Tokenize      bool
}

// Snapshot returns the stored values, tokenize flag and bound account on file
// as one consistent copy.
func (r *PaymentRequest) Snapshot() RequestSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *PaymentRequest) snapshotLocked() RequestSnapshot {
	return RequestSnapshot{
		ProductID:     r.product.ID,
		Values:        r.valuesLocked(),
		AccountOnFile: r.accountOnFile,
		Tokenize:      r.tokenize,
	}
}

// Values returns a copy of every stored raw value keyed by field id.
func (r *PaymentRequest) Values() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.valuesLocked()
}

func (r *PaymentRequest) valuesLocked() map[string]string {
	values := make(map[string]string, len(r.fields))
	for id, f := range r.fields {
		if f.value != nil {
			values[id] = *f.value
		}
	}
	return values
}

// AccountOnFile returns the bound account on file, or nil.
func (r *PaymentRequest) AccountOnFile() *AccountOnFile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.accountOnFile
}

// SetAccountOnFile binds aof, or clears the binding when aof is nil. Every held
// field the new account marks read-only is discarded together with its value,
// and the read-only flag of the remaining fields is recomputed. Snapshots
// obtained from Field before this call may be stale.
func (r *PaymentRequest) SetAccountOnFile(aof *AccountOnFile) error {
	if aof != nil && aof.ProductID != "" && aof.ProductID != r.product.ID {
		return fmt.Errorf("%w: %s", ErrAccountOnFileMismatch, aof.ProductID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.accountOnFile = aof
	for id, f := range r.fields {
		if r.isReadOnlyLocked(id) {
			delete(r.fields, id)
			continue
		}
		f.readOnly = false
	}
	return nil
}

// Tokenize reports whether the instrument should be stored as an account on file.
func (r *PaymentRequest) Tokenize() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tokenize
}

// SetTokenize sets the tokenize flag.
func (r *PaymentRequest) SetTokenize(tokenize bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokenize = tokenize
}

// Validate checks the stored values. With an account on file that declares
// must-write attributes only those fields are checked; otherwise every field of
// the product is.
func (r *PaymentRequest) Validate() ValidationResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.validateLocked()
}

// ValidateAndSnapshot validates the request and snapshots it under the same
// lock, so the snapshot is exactly the state the result describes.
func (r *PaymentRequest) ValidateAndSnapshot() (ValidationResult, RequestSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.validateLocked(), r.snapshotLocked()
}

func (r *PaymentRequest) validateLocked() ValidationResult {
	defs := r.product.fields
	if r.accountOnFile != nil {
		if keys := r.accountOnFile.MustWriteKeys(); len(keys) > 0 {
			defs = nil
			for _, key := range keys {
				if def, ok := r.product.Field(key); ok {
					defs = append(defs, def)
				}
			}
		}
	}

	var errs []ValidationError
	for _, def := range defs {
		value := ""
		if f, ok := r.fields[def.ID]; ok && f.value != nil {
			value = *f.value
		}
		errs = append(errs, def.Validate(value)...)
	}
	return newValidationResult(errs)
}
