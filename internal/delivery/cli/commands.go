package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"

	"invoicedesk/internal/delivery/render"
	"invoicedesk/internal/domain/entity"

	"github.com/google/subcommands"
)

type statusCmd struct {
	command
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "check that the backend is reachable" }
func (*statusCmd) Usage() string {
	return `invoicedesk status [-raw]

  Calls the backend liveness probe and prints its answer.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	c.setOutputFlags(f)
}

func (c *statusCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.exec(ctx, func(ctx context.Context, d Deps, p *render.Printer) error {
		status, err := d.Sync.Status(ctx)
		if err != nil {
			return err
		}
		d.Logger.Info("backend status", slog.Any("status", map[string]any(status)))

		values := map[string]string{"backend": d.Config.API.BaseURL}
		for key, value := range status {
			values[key] = fmt.Sprint(value)
		}

		var buf bytes.Buffer
		render.Status(&buf, "Backend", values)

		return p.Print(buf.String())
	})
}

type syncCmd struct {
	command
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "probe the backend and load every collection" }
func (*syncCmd) Usage() string {
	return `invoicedesk sync [-raw]

  Probes the backend, fetches invoices, products and customers, and prints
  how many records each collection holds.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	c.setOutputFlags(f)
}

func (c *syncCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.exec(ctx, func(ctx context.Context, d Deps, p *render.Printer) error {
		d.Sync.Bootstrap(ctx)

		counts := make([]render.Count, 0, len(entity.Kinds))
		for _, kind := range entity.Kinds {
			counts = append(counts, render.Count{Name: kind.String(), Count: d.State.Len(kind)})
		}

		var buf bytes.Buffer
		render.Counts(&buf, "Collections", counts)

		return p.Print(buf.String())
	})
}

// table is one collection view exposed as a listing command.
type table struct {
	kind entity.Kind
	view func(Deps) mountable
}

type mountable interface {
	renderer
	Mount(ctx context.Context)
}

//nolint:gochecknoglobals
var tables = []table{
	{kind: entity.KindInvoice, view: func(d Deps) mountable { return d.Invoices }},
	{kind: entity.KindProduct, view: func(d Deps) mountable { return d.Products }},
	{kind: entity.KindCustomer, view: func(d Deps) mountable { return d.Customers }},
}

type tableCmd struct {
	command
	table table
}

func (c *tableCmd) Name() string     { return c.table.kind.String() }
func (c *tableCmd) Synopsis() string { return "fetch and display " + c.table.kind.String() }
func (c *tableCmd) Usage() string {
	return fmt.Sprintf(`invoicedesk %s [-raw]

  Fetches the %s collection and prints it as a table.
`, c.table.kind, c.table.kind)
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	c.setOutputFlags(f)
}

func (c *tableCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.exec(ctx, func(ctx context.Context, d Deps, p *render.Printer) error {
		v := c.table.view(d)
		v.Mount(ctx)

		return p.Print(markdownOf(v))
	})
}
