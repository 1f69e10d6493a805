package entity

import (
	"encoding/json"
	"maps"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Field names shared by the record types.
const (
	FieldCustomerName  = "customer_name"
	FieldCustomer      = "customer"
	FieldProducts      = "products"
	FieldTotalAmount   = "total_amount"
	FieldDate          = "date"
	FieldProductName   = "product_name"
	FieldQuantity      = "quantity"
	FieldUnitPrice     = "unit_price"
	FieldTax           = "tax"
	FieldPriceWithTax  = "price_with_tax"
	FieldPhoneNumber   = "phone_number"
	FieldTotalPurchase = "total_purchase"
)

// Record is one JSON object as the backend sends it. Numbers are kept as
// json.Number and edited values as the raw strings the user typed, so a
// record round-trips without reinterpretation.
type Record map[string]any

// Has reports whether key is present with a non-null value.
func (r Record) Has(key string) bool {
	v, ok := r[key]

	return ok && v != nil
}

// Text returns the value of key formatted as text, or "" when absent.
func (r Record) Text(key string) string {
	return textOf(r[key])
}

// Decimal parses the value of key as a decimal number. The boolean is false
// when the value is absent, empty or not numeric.
func (r Record) Decimal(key string) (decimal.Decimal, bool) {
	return decimalOf(r[key])
}

// Lookup evaluates a JSONPath expression such as "$.customer.customer_name"
// against the record.
func (r Record) Lookup(path string) (any, error) {
	return jsonpath.Get(path, map[string]any(r))
}

// LookupText is Lookup formatted as text; missing paths yield "".
func (r Record) LookupText(path string) string {
	v, err := r.Lookup(path)
	if err != nil {
		return ""
	}

	return textOf(v)
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}

	return maps.Clone(r)
}

// With returns a shallow copy of the record with key set to value.
// The receiver is left untouched.
func (r Record) With(key string, value any) Record {
	out := r.Clone()
	out[key] = value

	return out
}

func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}

		return string(b)
	}
}

func decimalOf(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())

		return d, err == nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)

		return d, err == nil
	case float64:
		return decimal.NewFromFloat(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	default:
		return decimal.Zero, false
	}
}
