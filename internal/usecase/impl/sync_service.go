package impl

import (
	"context"
	"log/slog"

	"invoicedesk/internal/domain/entity"
	"invoicedesk/internal/domain/service"
	logs "invoicedesk/internal/infra/log"
	"invoicedesk/internal/state"
	"invoicedesk/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type syncService struct {
	gateway service.Gateway
	state   *state.AppState
	logger  *slog.Logger
}

// NewSyncService creates a new sync service instance
func NewSyncService(gateway service.Gateway, appState *state.AppState, logger *slog.Logger) usecase.SyncUsecase {
	return &syncService{
		gateway: gateway,
		state:   appState,
		logger:  logger,
	}
}

// Fetch lists one collection and replaces its store
func (s *syncService) Fetch(ctx context.Context, kind entity.Kind) error {
	logger := logs.FromContextOrDefault(ctx, s.logger).With(slog.String("kind", kind.String()))

	var (
		change state.Change
		err    error
	)
	switch kind {
	case entity.KindInvoice:
		var items []entity.Invoice
		if items, err = s.gateway.ListInvoices(ctx); err == nil {
			change = s.state.Invoices.Replace(items)
		}
	case entity.KindProduct:
		var items []entity.Product
		if items, err = s.gateway.ListProducts(ctx); err == nil {
			change = s.state.Products.Replace(items)
		}
	case entity.KindCustomer:
		var items []entity.Customer
		if items, err = s.gateway.ListCustomers(ctx); err == nil {
			change = s.state.Customers.Replace(items)
		}
	default:
		return errors.Errorf("unknown collection %q", kind)
	}

	if err != nil {
		logger.Error("fetch failed, keeping previous contents", slog.Any("error", err))

		return errors.Wrapf(err, "fetch %s", kind)
	}

	logger.Debug("collection replaced", slog.Int("count", change.Len))

	return nil
}

// RefetchAll fetches the three collections concurrently
func (s *syncService) RefetchAll(ctx context.Context) {
	var group errgroup.Group
	for _, kind := range entity.Kinds {
		group.Go(func() error {
			// Failures were logged by Fetch; one kind never stops the others.
			_ = s.Fetch(ctx, kind)

			return nil
		})
	}
	_ = group.Wait()
}

// Status calls the backend liveness probe
func (s *syncService) Status(ctx context.Context) (service.Status, error) {
	status, err := s.gateway.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "status")
	}

	return status, nil
}

// Bootstrap probes the backend and loads every collection
func (s *syncService) Bootstrap(ctx context.Context) {
	logger := logs.FromContextOrDefault(ctx, s.logger)

	status, err := s.Status(ctx)
	if err != nil {
		logger.Warn("backend status check failed", slog.Any("error", err))
	} else {
		logger.Info("backend status", slog.Any("status", map[string]any(status)))
	}

	s.RefetchAll(ctx)
}
