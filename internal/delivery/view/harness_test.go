package view

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"invoicedesk/config"
	"invoicedesk/internal/backendtest"
	"invoicedesk/internal/domain/entity"
	"invoicedesk/internal/infra/rest"
	"invoicedesk/internal/infra/source"
	"invoicedesk/internal/state"
	"invoicedesk/internal/usecase"
	"invoicedesk/internal/usecase/impl"
)

// harness wires the real stack against an in-memory backend.
type harness struct {
	backend *backendtest.Server
	cfg     *config.Config
	state   *state.AppState
	sync    usecase.SyncUsecase
	edit    usecase.EditUsecase
	upload  usecase.UploadUsecase
	logger  *slog.Logger
}

func newHarness(t *testing.T, cascade bool) *harness {
	t.Helper()

	backend := backendtest.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.API.BaseURL = backend.URL
	cfg.Display.Currency = "USD"
	cfg.Sync.CascadeOnEdit = &cascade

	gateway := rest.NewGateway(rest.Params{Config: cfg, Logger: logger})
	appState := state.New()
	syncUsecase := impl.NewSyncService(gateway, appState, logger)

	return &harness{
		backend: backend,
		cfg:     cfg,
		state:   appState,
		sync:    syncUsecase,
		edit:    impl.NewEditService(gateway, appState, syncUsecase, cfg, logger),
		upload:  impl.NewUploadService(gateway, syncUsecase, logger),
		logger:  logger,
	}
}

func (h *harness) invoiceView(t *testing.T) *InvoiceView {
	v := NewInvoiceView(h.state, h.sync, h.edit, h.logger)
	t.Cleanup(v.Close)

	return v
}

func (h *harness) productView(t *testing.T) *ProductView {
	v := NewProductView(h.state, h.sync, h.edit, h.cfg, h.logger)
	t.Cleanup(v.Close)

	return v
}

func (h *harness) customerView(t *testing.T) *CustomerView {
	v := NewCustomerView(h.state, h.sync, h.edit, h.logger)
	t.Cleanup(v.Close)

	return v
}

func (h *harness) uploadWidget() *UploadWidget {
	return NewUploadWidget(source.NewBlobSource(h.logger), h.upload, h.logger)
}

// listCalls returns the number of list GETs per collection path.
func (h *harness) listCalls() map[string]int {
	out := map[string]int{}
	for _, kind := range entity.Kinds {
		out[kind.Path()] = h.backend.Count(http.MethodGet, kind.Path())
	}

	return out
}

func (h *harness) totalRequests() int {
	return len(h.backend.Requests())
}
