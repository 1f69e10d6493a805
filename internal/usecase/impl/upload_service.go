package impl

import (
	"context"
	"log/slog"

	domainerrors "invoicedesk/internal/domain/errors"
	"invoicedesk/internal/domain/service"
	logs "invoicedesk/internal/infra/log"
	"invoicedesk/internal/usecase"

	"github.com/pkg/errors"
)

type uploadService struct {
	gateway service.Gateway
	sync    usecase.SyncUsecase
	logger  *slog.Logger
}

// NewUploadService creates a new upload service instance
func NewUploadService(gateway service.Gateway, syncUsecase usecase.SyncUsecase, logger *slog.Logger) usecase.UploadUsecase {
	return &uploadService{
		gateway: gateway,
		sync:    syncUsecase,
		logger:  logger,
	}
}

// Upload posts file and refetches everything on success
func (s *uploadService) Upload(ctx context.Context, file *service.File) (*service.UploadResult, error) {
	if file == nil {
		return nil, domainerrors.ErrNoFileSelected
	}

	logger := logs.FromContextOrDefault(ctx, s.logger).With(
		slog.String("file", file.Name),
		slog.Int64("size", file.Size),
	)

	result, err := s.gateway.UploadFile(ctx, file)
	if err != nil {
		logger.Error("upload failed", slog.Any("error", err))

		return nil, errors.Wrapf(err, "upload %s", file.Name)
	}

	if !result.Succeeded() {
		logger.Warn("upload rejected",
			slog.Int("status", result.StatusCode),
			slog.String("error", result.Error),
		)

		return result, nil
	}

	if extracted, err := result.Extracted(); err != nil {
		logger.Warn("upload data unreadable", slog.Any("error", err))
	} else {
		logger.Info("upload extracted",
			slog.String("message", result.Message),
			slog.Int("invoices", len(extracted.Invoices)),
			slog.Int("products", len(extracted.Products)),
			slog.Int("customers", len(extracted.Customers)),
		)
	}

	s.sync.RefetchAll(ctx)

	return result, nil
}
