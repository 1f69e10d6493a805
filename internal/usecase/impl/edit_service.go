package impl

import (
	"context"
	"log/slog"

	"invoicedesk/config"
	"invoicedesk/internal/domain/entity"
	domainerrors "invoicedesk/internal/domain/errors"
	"invoicedesk/internal/domain/service"
	logs "invoicedesk/internal/infra/log"
	"invoicedesk/internal/state"
	"invoicedesk/internal/usecase"

	"github.com/pkg/errors"
)

type editService struct {
	gateway service.Gateway
	state   *state.AppState
	sync    usecase.SyncUsecase
	cascade bool
	logger  *slog.Logger
}

// NewEditService creates a new edit service instance
func NewEditService(
	gateway service.Gateway,
	appState *state.AppState,
	syncUsecase usecase.SyncUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EditUsecase {
	return &editService{
		gateway: gateway,
		state:   appState,
		sync:    syncUsecase,
		cascade: cfg.Sync.CascadeEnabled(),
		logger:  logger,
	}
}

// Commit persists record and applies it locally
func (s *editService) Commit(ctx context.Context, kind entity.Kind, record entity.Record) (entity.Record, error) {
	if !kind.IsValid() {
		return nil, errors.Errorf("unknown collection %q", kind)
	}

	identity := kind.IdentityOf(record)
	if identity == "" {
		return nil, domainerrors.ErrMissingIdentity.WithDetailsf("%s record has no %s", kind, kind.IdentityField())
	}

	logger := logs.FromContextOrDefault(ctx, s.logger).With(
		slog.String("kind", kind.String()),
		slog.String("identity", identity),
	)

	committed, err := s.gateway.UpdateEntity(ctx, kind, identity, record)
	if err != nil {
		logger.Warn("commit failed", slog.Any("error", err))

		return nil, errors.Wrapf(err, "commit %s %s", kind, identity)
	}

	change, applied, err := s.state.Patch(kind, committed)
	if err != nil {
		return nil, err
	}
	logger.Info("record committed",
		slog.String("op", change.Op.String()),
		slog.Bool("applied", applied),
	)

	if s.cascade {
		s.sync.RefetchAll(ctx)
	}

	return committed, nil
}

// CommitLine routes a line-item edit to its owning record
func (s *editService) CommitLine(ctx context.Context, invoice entity.Invoice, index int, field string, value any) (*usecase.LineCommit, error) {
	lines := invoice.Lines()
	if index < 0 || index >= len(lines) {
		return nil, domainerrors.ErrRowNotFound.WithDetailsf("invoice %s has no line %d", invoice.Number(), index)
	}
	line := lines[index]

	if id := line.ProductID(); id != "" {
		if product, _, ok := s.state.Products.Find(id); ok {
			committed, err := s.Commit(ctx, entity.KindProduct, product.Record().With(field, value))
			if err != nil {
				return nil, err
			}

			return &usecase.LineCommit{Kind: entity.KindProduct, Record: committed}, nil
		}
		logs.FromContextOrDefault(ctx, s.logger).Debug("product not in catalog, editing the invoice line",
			slog.String("invoice", invoice.Number()),
			slog.String("product_id", id),
		)
	}

	edited := entity.ProductLine(line.Record().With(field, value))
	committed, err := s.Commit(ctx, entity.KindInvoice, invoice.WithLine(index, edited).Record())
	if err != nil {
		return nil, err
	}

	return &usecase.LineCommit{Kind: entity.KindInvoice, Record: committed}, nil
}
