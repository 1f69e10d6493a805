// Package cli implements the invoicedesk subcommands.
package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"invoicedesk/config"
	"invoicedesk/internal/delivery/render"
	"invoicedesk/internal/delivery/view"
	logs "invoicedesk/internal/infra/log"
	"invoicedesk/internal/state"
	"invoicedesk/internal/usecase"

	"github.com/google/subcommands"
	"go.uber.org/fx"
)

// Deps are the components a command works with.
type Deps struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	State     *state.AppState
	Sync      usecase.SyncUsecase
	Invoices  *view.InvoiceView
	Products  *view.ProductView
	Customers *view.CustomerView
	Upload    *view.UploadWidget
}

// Runner builds the dependency graph, calls fn with it and tears it down.
type Runner func(ctx context.Context, fn func(context.Context, Deps) error) error

// Register adds every command to commander. Tables and status lines go to
// out, errors to errOut.
func Register(commander *subcommands.Commander, run Runner, out, errOut io.Writer) {
	base := command{run: run, out: out, errOut: errOut}

	commander.Register(&statusCmd{command: base}, "backend")
	commander.Register(&syncCmd{command: base}, "backend")
	commander.Register(&uploadCmd{command: base}, "backend")

	for _, t := range tables {
		commander.Register(&tableCmd{command: base, table: t}, "collections")
	}
	commander.Register(&editCmd{command: base}, "collections")
}

// command carries what every subcommand shares.
type command struct {
	run    Runner
	out    io.Writer
	errOut io.Writer
	raw    bool
}

func (c *command) setOutputFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print plain markdown instead of styled terminal output")
}

// exec runs fn inside the dependency graph and maps its error to an exit
// status. Every log line and request of one command shares a request ID.
func (c *command) exec(ctx context.Context, fn func(context.Context, Deps, *render.Printer) error) subcommands.ExitStatus {
	err := c.run(ctx, func(ctx context.Context, d Deps) error {
		ctx, logger := logs.Scoped(ctx, d.Logger)
		d.Logger = logger

		return fn(ctx, d, render.NewPrinter(c.out, d.Config.Display.Style, c.raw))
	})
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (c *command) usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(c.errOut, format+"\n", args...)

	return subcommands.ExitUsageError
}

// renderer is a view that can draw itself as markdown.
type renderer interface {
	Render(w io.Writer)
}

func markdownOf(views ...renderer) string {
	var buf bytes.Buffer
	for i, v := range views {
		if i > 0 {
			buf.WriteString("\n")
		}
		v.Render(&buf)
	}

	return buf.String()
}
