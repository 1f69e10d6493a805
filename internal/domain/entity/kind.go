// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies one of the three remote collections.
type Kind string

const (
	// KindInvoice is the invoices collection, keyed by invoice_number.
	KindInvoice Kind = "invoices"
	// KindProduct is the product catalog, keyed by product_id.
	KindProduct Kind = "products"
	// KindCustomer is the customers collection, keyed by customer_id.
	KindCustomer Kind = "customers"
)

// Identity fields used to locate a record during a patch.
const (
	FieldInvoiceNumber = "invoice_number"
	FieldProductID     = "product_id"
	FieldCustomerID    = "customer_id"
)

// MissingKeyPolicy decides what a patch does when no element carries the
// patched record's identity.
type MissingKeyPolicy int

const (
	// MissingKeyDrop discards the patch.
	MissingKeyDrop MissingKeyPolicy = iota
	// MissingKeyAppend adds the record at the end of the collection.
	MissingKeyAppend
)

// String returns the string representation of the MissingKeyPolicy.
func (p MissingKeyPolicy) String() string {
	if p == MissingKeyAppend {
		return "append"
	}

	return "drop"
}

// Kinds lists every collection in the order they are fetched and rendered.
//
//nolint:gochecknoglobals
var Kinds = []Kind{KindInvoice, KindProduct, KindCustomer}

// ParseKind accepts the collection name in singular or plural form.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "invoice", "invoices":
		return KindInvoice, nil
	case "product", "products":
		return KindProduct, nil
	case "customer", "customers":
		return KindCustomer, nil
	default:
		return "", errors.Errorf("unknown collection %q", s)
	}
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a valid value.
func (k Kind) IsValid() bool {
	switch k {
	case KindInvoice, KindProduct, KindCustomer:
		return true
	default:
		return false
	}
}

// IdentityField returns the field that identifies a record of this kind.
func (k Kind) IdentityField() string {
	switch k {
	case KindInvoice:
		return FieldInvoiceNumber
	case KindProduct:
		return FieldProductID
	case KindCustomer:
		return FieldCustomerID
	default:
		return ""
	}
}

// IdentityOf returns the identity value of r, or "" when it has none.
func (k Kind) IdentityOf(r Record) string {
	field := k.IdentityField()
	if field == "" || !r.Has(field) {
		return ""
	}

	return r.Text(field)
}

// MissingKeyPolicy returns how a patch with an unknown identity is handled.
// Only the product catalog appends; the asymmetry is deliberate.
func (k Kind) MissingKeyPolicy() MissingKeyPolicy {
	if k == KindProduct {
		return MissingKeyAppend
	}

	return MissingKeyDrop
}

// Path returns the REST path of the collection relative to the API root.
func (k Kind) Path() string {
	return "/api/" + string(k)
}

// EditableFields returns the record-level fields a view lets the user edit.
func (k Kind) EditableFields() []string {
	switch k {
	case KindInvoice:
		return []string{FieldCustomerName, FieldTotalAmount, FieldDate}
	case KindProduct:
		return []string{FieldProductName, FieldQuantity, FieldUnitPrice, FieldTax}
	case KindCustomer:
		return []string{FieldCustomerName, FieldPhoneNumber, FieldTotalPurchase}
	default:
		return nil
	}
}

// CanEdit reports whether field is editable on records of this kind.
func (k Kind) CanEdit(field string) bool {
	return slices.Contains(k.EditableFields(), field)
}

// LineEditableFields are the invoice line-item fields a view lets the user edit.
//
//nolint:gochecknoglobals
var LineEditableFields = []string{FieldProductName, FieldQuantity, FieldTax}

// CanEditLine reports whether field is editable on an invoice line item.
func CanEditLine(field string) bool {
	return slices.Contains(LineEditableFields, field)
}
