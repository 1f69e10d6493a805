package usecase

import (
	"context"

	"invoicedesk/internal/domain/service"
)

// UploadUsecase sends documents for server-side extraction.
type UploadUsecase interface {
	// Upload posts file and, when the payload reports success, refetches all
	// three collections. The decoded payload is returned whatever its shape;
	// an error means no usable payload was received.
	Upload(ctx context.Context, file *service.File) (*service.UploadResult, error)
}
