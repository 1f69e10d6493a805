// Package render turns view rows into markdown and prints it to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"
)

// InvoiceRow is one invoice as displayed. Lines render as one table row each;
// the invoice-level cells appear on the first of them only.
type InvoiceRow struct {
	Position     int
	Identity     string
	CustomerName string
	TotalAmount  string
	Date         string
	Lines        []InvoiceLine
	Err          string
}

// InvoiceLine is one embedded product line as displayed.
type InvoiceLine struct {
	ProductName string
	Quantity    string
	Tax         string
	Err         string
}

// ProductRow is one catalog entry as displayed.
type ProductRow struct {
	Identity     string
	Name         string
	Quantity     string
	UnitPrice    string
	Tax          string
	PriceWithTax string
	Err          string
}

// CustomerRow is one customer as displayed.
type CustomerRow struct {
	Identity      string
	Name          string
	Phone         string
	TotalPurchase string
	Err           string
}

// Count is one line of a collection summary.
type Count struct {
	Name  string
	Count int
}

// Invoices writes the invoice table. Invoices without lines produce no row.
func Invoices(w io.Writer, rows []InvoiceRow) {
	fmt.Fprintf(w, "# Invoices\n\n")
	fmt.Fprintln(w, "| # | Invoice | Customer Name | Product Name | Quantity | Tax (%) | Total Amount | Date | ⚠ |")
	fmt.Fprintln(w, "|---:|:---|:---|:---|---:|---:|---:|:---|:---|")

	for _, row := range rows {
		for i, line := range row.Lines {
			position, identity, customer, total, date := "", "", "", "", ""
			warning := line.Err
			if i == 0 {
				position = fmt.Sprint(row.Position)
				identity, customer, total, date = row.Identity, row.CustomerName, row.TotalAmount, row.Date
				warning = joinWarnings(row.Err, line.Err)
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				position,
				cell(identity),
				cell(customer),
				cell(line.ProductName),
				cell(line.Quantity),
				cell(line.Tax),
				cell(total),
				cell(date),
				warn(warning),
			)
		}
	}
}

// Products writes the product table.
func Products(w io.Writer, rows []ProductRow) {
	fmt.Fprintf(w, "# Products\n\n")
	fmt.Fprintln(w, "| ID | Name | Quantity | Unit Price | Tax (%) | Price with Tax | ⚠ |")
	fmt.Fprintln(w, "|:---|:---|---:|---:|---:|---:|:---|")

	for _, row := range rows {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
			cell(row.Identity),
			cell(row.Name),
			cell(row.Quantity),
			cell(row.UnitPrice),
			cell(row.Tax),
			cell(row.PriceWithTax),
			warn(row.Err),
		)
	}
}

// Customers writes the customer table.
func Customers(w io.Writer, rows []CustomerRow) {
	fmt.Fprintf(w, "# Customers\n\n")
	fmt.Fprintln(w, "| ID | Customer Name | Phone Number | Total Purchase Amount | ⚠ |")
	fmt.Fprintln(w, "|:---|:---|:---|---:|:---|")

	for _, row := range rows {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			cell(row.Identity),
			cell(row.Name),
			cell(row.Phone),
			cell(row.TotalPurchase),
			warn(row.Err),
		)
	}
}

// Counts writes a two-column summary of collection sizes.
func Counts(w io.Writer, title string, counts []Count) {
	fmt.Fprintf(w, "# %s\n\n", title)
	fmt.Fprintln(w, "| Collection | Records |")
	fmt.Fprintln(w, "|:---|---:|")

	for _, c := range counts {
		fmt.Fprintf(w, "| %s | %d |\n", cell(c.Name), c.Count)
	}
}

// Status writes a key/value table.
func Status(w io.Writer, title string, values map[string]string) {
	fmt.Fprintf(w, "# %s\n\n", title)
	fmt.Fprintln(w, "| Key | Value |")
	fmt.Fprintln(w, "|:---|:---|")

	for _, key := range sortedKeys(values) {
		fmt.Fprintf(w, "| %s | %s |\n", cell(key), cell(values[key]))
	}
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// cell escapes a value so it stays inside its table cell.
func cell(s string) string {
	return cellEscaper.Replace(s)
}

func warn(msg string) string {
	if msg == "" {
		return ""
	}

	return "⚠ " + cell(msg)
}

func joinWarnings(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "; " + b
	}
}
