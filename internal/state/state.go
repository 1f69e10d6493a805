package state

import (
	"invoicedesk/internal/domain/entity"

	"github.com/pkg/errors"
)

// AppState owns the three collection stores. A single instance is created by
// the DI container and handed to every component that reads or writes them.
type AppState struct {
	Invoices  *Store[entity.Invoice]
	Products  *Store[entity.Product]
	Customers *Store[entity.Customer]
}

// New creates an AppState with empty stores.
func New() *AppState {
	return &AppState{
		Invoices:  NewStore[entity.Invoice](entity.KindInvoice),
		Products:  NewStore[entity.Product](entity.KindProduct),
		Customers: NewStore[entity.Customer](entity.KindCustomer),
	}
}

// Patch routes a patch-by-key to the store of kind.
func (a *AppState) Patch(kind entity.Kind, record entity.Record) (Change, bool, error) {
	switch kind {
	case entity.KindInvoice:
		change, ok := a.Invoices.PatchByKey(entity.Invoice(record))

		return change, ok, nil
	case entity.KindProduct:
		change, ok := a.Products.PatchByKey(entity.Product(record))

		return change, ok, nil
	case entity.KindCustomer:
		change, ok := a.Customers.PatchByKey(entity.Customer(record))

		return change, ok, nil
	default:
		return Change{}, false, errors.Errorf("unknown collection %q", kind)
	}
}

// Len returns the size of the collection of kind.
func (a *AppState) Len(kind entity.Kind) int {
	switch kind {
	case entity.KindInvoice:
		return a.Invoices.Len()
	case entity.KindProduct:
		return a.Products.Len()
	case entity.KindCustomer:
		return a.Customers.Len()
	default:
		return 0
	}
}

// Subscribe registers l on the store of kind.
func (a *AppState) Subscribe(kind entity.Kind, l Listener) func() {
	switch kind {
	case entity.KindInvoice:
		return a.Invoices.Subscribe(l)
	case entity.KindProduct:
		return a.Products.Subscribe(l)
	case entity.KindCustomer:
		return a.Customers.Subscribe(l)
	default:
		return func() {}
	}
}
