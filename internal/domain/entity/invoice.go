package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

const customerNamePath = "$.customer.customer_name"

// Invoice is an invoice record. Its line items are embedded copies and are
// not kept consistent with the product catalog.
type Invoice Record

// Record returns the invoice as a plain record.
func (i Invoice) Record() Record {
	return Record(i)
}

// Number returns the invoice_number identity.
func (i Invoice) Number() string {
	return Record(i).Text(FieldInvoiceNumber)
}

// CustomerName returns the name of the embedded customer, or "" if there is
// none.
func (i Invoice) CustomerName() string {
	return Record(i).LookupText(customerNamePath)
}

// Lines returns the embedded line items in order.
func (i Invoice) Lines() []ProductLine {
	raw, ok := i[FieldProducts].([]any)
	if !ok {
		return nil
	}

	lines := make([]ProductLine, 0, len(raw))
	for _, item := range raw {
		switch m := item.(type) {
		case map[string]any:
			lines = append(lines, ProductLine(m))
		case Record:
			lines = append(lines, ProductLine(m))
		case ProductLine:
			lines = append(lines, m)
		default:
			lines = append(lines, ProductLine{})
		}
	}

	return lines
}

// TotalAmount returns total_amount, zero when absent or not numeric.
// It is never derived from the line items.
func (i Invoice) TotalAmount() decimal.Decimal {
	d, _ := Record(i).Decimal(FieldTotalAmount)

	return d
}

// Date returns the date exactly as stored.
func (i Invoice) Date() string {
	return Record(i).Text(FieldDate)
}

// WithLine returns a shallow copy of the invoice whose line at index is
// replaced. Other lines keep their identity.
func (i Invoice) WithLine(index int, line ProductLine) Invoice {
	raw, _ := i[FieldProducts].([]any)
	products := slices.Clone(raw)
	if index >= 0 && index < len(products) {
		products[index] = map[string]any(line)
	}

	return Invoice(Record(i).With(FieldProducts, products))
}

// ProductLine is a line item embedded in an invoice.
type ProductLine Record

// Record returns the line as a plain record.
func (l ProductLine) Record() Record {
	return Record(l)
}

// ProductID returns the catalog id the line was built from, if any.
func (l ProductLine) ProductID() string {
	return Record(l).Text(FieldProductID)
}

// Name returns product_name.
func (l ProductLine) Name() string {
	return Record(l).Text(FieldProductName)
}

// Quantity returns the quantity as entered or stored, without parsing.
func (l ProductLine) Quantity() string {
	return Record(l).Text(FieldQuantity)
}

// Tax returns the tax percentage as text, "0" when absent.
func (l ProductLine) Tax() string {
	if t := Record(l).Text(FieldTax); t != "" {
		return t
	}

	return "0"
}
