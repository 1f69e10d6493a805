package entity

import "github.com/shopspring/decimal"

// DefaultTax is the tax percentage assumed when a product carries none.
const DefaultTax = 5

// Product is a catalog product record.
type Product Record

// Record returns the product as a plain record.
func (p Product) Record() Record {
	return Record(p)
}

// ID returns the product_id identity.
func (p Product) ID() string {
	return Record(p).Text(FieldProductID)
}

// Name returns product_name.
func (p Product) Name() string {
	return Record(p).Text(FieldProductName)
}

// Quantity returns the quantity as entered or stored, without parsing.
func (p Product) Quantity() string {
	return Record(p).Text(FieldQuantity)
}

// UnitPrice returns unit_price, zero when absent or not numeric.
func (p Product) UnitPrice() decimal.Decimal {
	d, _ := Record(p).Decimal(FieldUnitPrice)

	return d
}

// Tax returns the tax percentage, DefaultTax when absent.
func (p Product) Tax() decimal.Decimal {
	if !Record(p).Has(FieldTax) || Record(p).Text(FieldTax) == "" {
		return decimal.NewFromInt(DefaultTax)
	}
	d, _ := Record(p).Decimal(FieldTax)

	return d
}

// PriceWithTax returns the server-supplied price_with_tax, or
// unit_price * (1 + tax/100) when the server sent none. The computed value is
// for display only and never stored on the record.
func (p Product) PriceWithTax() decimal.Decimal {
	if d, ok := Record(p).Decimal(FieldPriceWithTax); ok {
		return d
	}
	rate := decimal.NewFromInt(1).Add(p.Tax().Div(decimal.NewFromInt(100)))

	return p.UnitPrice().Mul(rate)
}
