package usecase

import (
	"context"

	"invoicedesk/internal/domain/entity"
	"invoicedesk/internal/domain/service"
)

// SyncUsecase keeps the collection stores in step with the backend.
type SyncUsecase interface {
	// Fetch lists one collection and replaces its store. On failure the store
	// keeps its previous contents and the error is logged and returned.
	Fetch(ctx context.Context, kind entity.Kind) error

	// RefetchAll fetches the three collections concurrently and returns once
	// all of them completed. Failures are logged and swallowed.
	RefetchAll(ctx context.Context)

	// Status calls the backend liveness probe.
	Status(ctx context.Context) (service.Status, error)

	// Bootstrap probes the backend, logs the answer and refetches everything.
	Bootstrap(ctx context.Context)
}
