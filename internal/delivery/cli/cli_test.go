package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"invoicedesk/config"
	"invoicedesk/internal/backendtest"
	"invoicedesk/internal/delivery/view"
	"invoicedesk/internal/domain/entity"
	"invoicedesk/internal/infra/rest"
	"invoicedesk/internal/infra/source"
	"invoicedesk/internal/state"
	"invoicedesk/internal/usecase/impl"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixtures struct {
	backend *backendtest.Server
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	logs    *bytes.Buffer
	run     Runner
}

func createTestCLI(t *testing.T) *testFixtures {
	t.Helper()

	backend := backendtest.New(t)
	logBuf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logBuf, nil))

	cfg := &config.Config{}
	cfg.API.BaseURL = backend.URL
	cfg.Display.Currency = "USD"
	cfg.Display.Style = "notty"

	run := func(ctx context.Context, fn func(context.Context, Deps) error) error {
		gateway := rest.NewGateway(rest.Params{Config: cfg, Logger: logger})
		appState := state.New()
		syncUsecase := impl.NewSyncService(gateway, appState, logger)
		editUsecase := impl.NewEditService(gateway, appState, syncUsecase, cfg, logger)
		uploadUsecase := impl.NewUploadService(gateway, syncUsecase, logger)

		d := Deps{
			Config:    cfg,
			Logger:    logger,
			State:     appState,
			Sync:      syncUsecase,
			Invoices:  view.NewInvoiceView(appState, syncUsecase, editUsecase, logger),
			Products:  view.NewProductView(appState, syncUsecase, editUsecase, cfg, logger),
			Customers: view.NewCustomerView(appState, syncUsecase, editUsecase, logger),
			Upload:    view.NewUploadWidget(source.NewBlobSource(logger), uploadUsecase, logger),
		}
		defer d.Invoices.Close()
		defer d.Products.Close()
		defer d.Customers.Close()

		return fn(ctx, d)
	}

	return &testFixtures{
		backend: backend,
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		logs:    logBuf,
		run:     run,
	}
}

// logLines decodes the JSON log lines whose msg equals msg.
func (fx *testFixtures) logLines(t *testing.T, msg string) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(fx.logs.Bytes()), []byte("\n")) {
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line))
		if line["msg"] == msg {
			lines = append(lines, line)
		}
	}

	return lines
}

func (fx *testFixtures) execute(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()

	flags := flag.NewFlagSet("invoicedesk", flag.ContinueOnError)
	flags.SetOutput(fx.stderr)
	commander := subcommands.NewCommander(flags, "invoicedesk")
	commander.Output = fx.stdout
	commander.Error = fx.stderr
	Register(commander, fx.run, fx.stdout, fx.stderr)

	require.NoError(t, flags.Parse(args))

	return commander.Execute(context.Background())
}

func TestStatusCommand(t *testing.T) {
	t.Parallel()

	fx := createTestCLI(t)

	status := fx.execute(t, "status", "-raw")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, fx.stdout.String(), "| status | Backend is running |")
	assert.Contains(t, fx.stdout.String(), fx.backend.URL)
}

func TestStatusCommand_BackendDown(t *testing.T) {
	t.Parallel()

	fx := createTestCLI(t)
	fx.backend.Close()

	status := fx.execute(t, "status")

	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, fx.stderr.String(), "Error: status")
}

func TestSyncCommand(t *testing.T) {
	t.Parallel()

	fx := createTestCLI(t)
	fx.backend.Seed(entity.KindInvoice, map[string]any{"invoice_number": "INV1"}, map[string]any{"invoice_number": "INV2"})
	fx.backend.Seed(entity.KindProduct, map[string]any{"product_id": "P1"})

	status := fx.execute(t, "sync", "-raw")

	assert.Equal(t, subcommands.ExitSuccess, status)
	out := fx.stdout.String()
	assert.Contains(t, out, "| invoices | 2 |")
	assert.Contains(t, out, "| products | 1 |")
	assert.Contains(t, out, "| customers | 0 |")
	assert.Equal(t, 1, fx.backend.Count(http.MethodGet, "/api/status"))
}

func TestSyncCommand_SharesRequestID(t *testing.T) {
	t.Parallel()

	fx := createTestCLI(t)
	fx.backend.FailList(entity.KindInvoice, backendtest.Reply{Status: http.StatusInternalServerError})

	status := fx.execute(t, "sync")
	require.Equal(t, subcommands.ExitSuccess, status, fx.stderr.String())

	requests := fx.backend.Requests()
	require.NotEmpty(t, requests)
	id := requests[0].RequestID
	require.NotEmpty(t, id)
	for _, req := range requests {
		assert.Equal(t, id, req.RequestID, req.Path)
	}

	failed := fx.logLines(t, "fetch failed, keeping previous contents")
	require.Len(t, failed, 1)
	assert.Equal(t, id, failed[0]["request_id"])
}

func TestTableCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind entity.Kind
		seed map[string]any
		want string
	}{
		{
			name: "invoices",
			kind: entity.KindInvoice,
			seed: map[string]any{
				"invoice_number": "INV1",
				"customer":       map[string]any{"customer_name": "Acme"},
				"products":       []any{map[string]any{"product_name": "Widget", "quantity": 2, "tax": 5}},
				"total_amount":   100,
				"date":           "2024-01-01",
			},
			want: "| 1 | INV1 | Acme | Widget | 2 | 5 | 100.00 | 2024-01-01 |  |",
		},
		{
			name: "products",
			kind: entity.KindProduct,
			seed: map[string]any{"product_id": "P1", "product_name": "Widget", "quantity": 2, "unit_price": 100},
			want: "| P1 | Widget | 2 | 100.00 | 5 | $105.00 |  |",
		},
		{
			name: "customers",
			kind: entity.KindCustomer,
			seed: map[string]any{"customer_id": "C1", "customer_name": "Acme"},
			want: "| C1 | Acme | N/A | 0.00 |  |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestCLI(t)
			fx.backend.Seed(tt.kind, tt.seed)

			status := fx.execute(t, tt.name, "-raw")

			assert.Equal(t, subcommands.ExitSuccess, status)
			assert.Contains(t, fx.stdout.String(), tt.want)
			assert.Equal(t, 1, fx.backend.Count(http.MethodGet, tt.kind.Path()))
		})
	}
}

func TestEditCommand(t *testing.T) {
	t.Parallel()

	t.Run("invoice line", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)
		fx.backend.Seed(entity.KindInvoice, map[string]any{
			"invoice_number": "INV1",
			"products":       []any{map[string]any{"product_name": "Widget", "quantity": 2}},
		})

		status := fx.execute(t, "edit", "-raw", "-line", "0", "invoices", "INV1", "quantity", "5")

		assert.Equal(t, subcommands.ExitSuccess, status, fx.stderr.String())
		assert.Equal(t, 1, fx.backend.Count(http.MethodPut, "/api/invoices/INV1"))
		assert.Contains(t, fx.stdout.String(), "Saved **quantity** of invoices INV1.")
		assert.Contains(t, fx.stdout.String(), "| Widget | 5 |")
	})

	t.Run("invoice line of a catalog product", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)
		fx.backend.Seed(entity.KindInvoice, map[string]any{
			"invoice_number": "INV1",
			"products":       []any{map[string]any{"product_id": "P1", "product_name": "Laptop", "quantity": 1}},
		})
		fx.backend.Seed(entity.KindProduct, map[string]any{
			"product_id": "P1", "product_name": "Laptop", "quantity": 1,
			"unit_price": 1000, "tax": 18, "price_with_tax": 1180,
		})

		status := fx.execute(t, "edit", "-raw", "-line", "0", "invoices", "INV1", "quantity", "4")

		assert.Equal(t, subcommands.ExitSuccess, status, fx.stderr.String())
		assert.Equal(t, 1, fx.backend.Count(http.MethodPut, "/api/products/P1"))
		assert.Zero(t, fx.backend.Count(http.MethodPut, "/api/invoices/INV1"))
		stored := fx.backend.Records(entity.KindProduct)[0]
		assert.Equal(t, "4", stored["quantity"])
	})

	t.Run("customer", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)
		fx.backend.Seed(entity.KindCustomer, map[string]any{"customer_id": "C1"})

		status := fx.execute(t, "edit", "-raw", "customer", "C1", "phone_number", "555")

		assert.Equal(t, subcommands.ExitSuccess, status, fx.stderr.String())
		assert.Equal(t, "555", fx.backend.Records(entity.KindCustomer)[0]["phone_number"])
	})

	t.Run("rejected by backend", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)
		fx.backend.Seed(entity.KindProduct, map[string]any{"product_id": "P1"})
		fx.backend.FailUpdate(entity.KindProduct, backendtest.Reply{Status: http.StatusNotFound, Body: map[string]any{"error": "Not found"}})

		status := fx.execute(t, "edit", "-raw", "products", "P1", "quantity", "5")

		assert.Equal(t, subcommands.ExitFailure, status)
		assert.Contains(t, fx.stdout.String(), "⚠ UPDATE_REJECTED (HTTP 404)")
		assert.Contains(t, fx.stderr.String(), "update rejected by server")
	})

	t.Run("computed column", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)
		fx.backend.Seed(entity.KindProduct, map[string]any{"product_id": "P1"})

		status := fx.execute(t, "edit", "products", "P1", "price_with_tax", "9")

		assert.Equal(t, subcommands.ExitFailure, status)
		assert.Contains(t, fx.stderr.String(), "field is not editable")
		assert.Zero(t, fx.backend.Count(http.MethodPut, "/api/products/P1"))
	})

	t.Run("usage errors", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)

		assert.Equal(t, subcommands.ExitUsageError, fx.execute(t, "edit", "invoices", "INV1"))
		assert.Equal(t, subcommands.ExitUsageError, fx.execute(t, "edit", "orders", "1", "x", "y"))
		assert.Equal(t, subcommands.ExitUsageError, fx.execute(t, "edit", "-line", "0", "products", "P1", "tax", "1"))
		assert.Empty(t, fx.backend.Requests())
	})
}

func TestUploadCommand(t *testing.T) {
	t.Parallel()

	document := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, os.WriteFile(document, []byte("%PDF-1.4"), 0o600))

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)
		fx.backend.Seed(entity.KindInvoice, map[string]any{"invoice_number": "INV1", "products": []any{map[string]any{"product_name": "Widget"}}})

		status := fx.execute(t, "upload", "-raw", document)

		assert.Equal(t, subcommands.ExitSuccess, status, fx.stderr.String())
		out := fx.stdout.String()
		assert.Contains(t, out, "Upload successful! Data extracted.")
		assert.Contains(t, out, "# Invoices")
		assert.Contains(t, out, "# Products")
		assert.Contains(t, out, "# Customers")
		assert.Contains(t, out, "| INV1 |")
		for _, kind := range entity.Kinds {
			assert.Equal(t, 1, fx.backend.Count(http.MethodGet, kind.Path()))
		}

		finished := fx.logLines(t, "upload finished")
		require.Len(t, finished, 1)
		assert.Equal(t, "invoice.pdf", finished[0]["name"])
		assert.Regexp(t, `^\d+s$`, finished[0]["elapsed"])
		assert.Equal(t, true, finished[0]["ok"])
		assert.NotEmpty(t, finished[0]["request_id"])
	})

	t.Run("error shaped reply", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)
		fx.backend.ReplyToUpload(backendtest.Reply{Status: http.StatusOK, Body: map[string]any{"error": "bad file"}})

		status := fx.execute(t, "upload", "-raw", document)

		assert.Equal(t, subcommands.ExitFailure, status)
		assert.Contains(t, fx.stdout.String(), "Upload failed: bad file")
		for _, kind := range entity.Kinds {
			assert.Zero(t, fx.backend.Count(http.MethodGet, kind.Path()))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)

		status := fx.execute(t, "upload", filepath.Join(t.TempDir(), "nope.pdf"))

		assert.Equal(t, subcommands.ExitFailure, status)
		assert.Contains(t, fx.stderr.String(), "file not found")
		assert.Empty(t, fx.backend.Requests())
	})

	t.Run("no argument", func(t *testing.T) {
		t.Parallel()

		fx := createTestCLI(t)

		assert.Equal(t, subcommands.ExitUsageError, fx.execute(t, "upload"))
	})
}
