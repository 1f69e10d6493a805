package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"syscall"

	"invoicedesk/config"
	"invoicedesk/internal/delivery/cli"
	"invoicedesk/internal/delivery/view"
	logs "invoicedesk/internal/infra/log"
	"invoicedesk/internal/infra/rest"
	"invoicedesk/internal/infra/source"
	"invoicedesk/internal/state"
	"invoicedesk/internal/usecase/impl"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cli.Register(commander, run, os.Stdout, os.Stderr)

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(int(commander.Execute(ctx)))
}

// run builds the graph for one command, starts it, hands the dependencies
// to fn and stops the graph again.
func run(ctx context.Context, fn func(context.Context, cli.Deps) error) error {
	var deps cli.Deps

	app := fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		injectInfra(),
		injectState(),
		injectUsecase(),
		injectView(),
		fx.Populate(&deps),
		fx.Invoke(closeViewsOnStop),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start application")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			deps.Logger.Error("Failed to stop application", slog.Any("error", err))
		}
	}()

	return fn(ctx, deps)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		rest.NewGateway,
		source.NewBlobSource,
	)
}

func injectState() fx.Option {
	return fx.Options(
		fx.Provide(
			state.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			impl.NewEditService,
			impl.NewUploadService,
		),
	)
}

func injectView() fx.Option {
	return fx.Options(
		fx.Provide(
			view.NewInvoiceView,
			view.NewProductView,
			view.NewCustomerView,
			view.NewUploadWidget,
		),
	)
}

func closeViewsOnStop(lc fx.Lifecycle, d cli.Deps) {
	lc.Append(fx.StopHook(func() {
		d.Invoices.Close()
		d.Products.Close()
		d.Customers.Close()
	}))
}
