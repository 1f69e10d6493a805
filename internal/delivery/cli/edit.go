package cli

import (
	"context"
	"flag"
	"fmt"

	"invoicedesk/internal/delivery/render"
	"invoicedesk/internal/domain/entity"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
)

type editCmd struct {
	command
	line int
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change one field of one record" }
func (*editCmd) Usage() string {
	return `invoicedesk edit [-line <n>] [-raw] <kind> <identity> <field> <value>

  Fetches the collection, writes value into field of the record identified
  by identity and prints the table. With -line the field belongs to the
  n-th line item (from 0) of an invoice.

  Editable fields:
    invoices   customer_name, total_amount, date
               -line: product_name, quantity, tax
    products   product_name, quantity, unit_price, tax
    customers  customer_name, phone_number, total_purchase
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.setOutputFlags(f)
	f.IntVar(&c.line, "line", -1, "index of the invoice line item to edit")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 4 {
		return c.usageError("usage: %s", c.Usage())
	}

	kind, err := entity.ParseKind(f.Arg(0))
	if err != nil {
		return c.usageError("%v", err)
	}
	if c.line >= 0 && kind != entity.KindInvoice {
		return c.usageError("-line only applies to invoices")
	}
	identity, field, value := f.Arg(1), f.Arg(2), f.Arg(3)

	return c.exec(ctx, func(ctx context.Context, d Deps, p *render.Printer) error {
		v, blur := c.target(d, kind, identity, field, value)
		v.Mount(ctx)
		if c.line >= 0 {
			// Lines naming a catalog product are saved to the catalog.
			d.Products.Mount(ctx)
		}

		if err := blur(ctx); err != nil {
			// The table shows the warning next to the row.
			_ = p.Print(markdownOf(v))

			return errors.Wrapf(err, "edit %s %s", kind, identity)
		}

		return p.Print(fmt.Sprintf("Saved **%s** of %s %s.\n\n%s", field, kind, identity, markdownOf(v)))
	})
}

func (c *editCmd) target(d Deps, kind entity.Kind, identity, field, value string) (mountable, func(context.Context) error) {
	switch kind {
	case entity.KindProduct:
		return d.Products, func(ctx context.Context) error {
			return d.Products.Blur(ctx, identity, field, value)
		}
	case entity.KindCustomer:
		return d.Customers, func(ctx context.Context) error {
			return d.Customers.Blur(ctx, identity, field, value)
		}
	default:
		return d.Invoices, func(ctx context.Context) error {
			return d.Invoices.Blur(ctx, identity, c.line, field, value)
		}
	}
}
