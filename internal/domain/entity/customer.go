package entity

import "github.com/shopspring/decimal"

// Customer is a customer record.
type Customer Record

// Record returns the customer as a plain record.
func (c Customer) Record() Record {
	return Record(c)
}

// ID returns the customer_id identity.
func (c Customer) ID() string {
	return Record(c).Text(FieldCustomerID)
}

// Name returns customer_name.
func (c Customer) Name() string {
	return Record(c).Text(FieldCustomerName)
}

// Phone returns phone_number.
func (c Customer) Phone() string {
	return Record(c).Text(FieldPhoneNumber)
}

// TotalPurchase returns total_purchase, zero when absent or not numeric.
func (c Customer) TotalPurchase() decimal.Decimal {
	d, _ := Record(c).Decimal(FieldTotalPurchase)

	return d
}
