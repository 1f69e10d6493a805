package cli

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"invoicedesk/internal/delivery/render"

	"github.com/google/subcommands"
)

type uploadCmd struct {
	command
}

func (*uploadCmd) Name() string     { return "upload" }
func (*uploadCmd) Synopsis() string { return "send a document for data extraction" }
func (*uploadCmd) Usage() string {
	return `invoicedesk upload [-raw] <path-or-url>

  Uploads a document (PDF, image or spreadsheet) for server-side extraction
  and prints the refreshed collections. The location is a local path or a
  blob URL (file://, s3://, gs://).
`
}

func (c *uploadCmd) SetFlags(f *flag.FlagSet) {
	c.setOutputFlags(f)
}

func (c *uploadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.usageError("usage: %s", c.Usage())
	}
	location := f.Arg(0)

	return c.exec(ctx, func(ctx context.Context, d Deps, p *render.Printer) error {
		selection, err := d.Upload.Select(ctx, location)
		if err != nil {
			return err
		}
		d.Logger.Info("file selected",
			slog.String("name", selection.Name),
			slog.String("size", render.FormatBytes(selection.Size)),
		)

		start := time.Now()
		status, err := d.Upload.Submit(ctx)
		d.Logger.Info("upload finished",
			slog.String("name", selection.Name),
			slog.String("elapsed", render.FormatDuration(time.Since(start))),
			slog.Bool("ok", err == nil),
		)
		if err != nil {
			if status != "" {
				_ = p.Print(status + "\n")
			}

			return err
		}

		return p.Print(fmt.Sprintf("%s\n\n%s", status, markdownOf(d.Invoices, d.Products, d.Customers)))
	})
}
