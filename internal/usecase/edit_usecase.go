package usecase

import (
	"context"

	"invoicedesk/internal/domain/entity"
)

// LineCommit reports where a line-item edit was persisted.
type LineCommit struct {
	Kind   entity.Kind
	Record entity.Record
}

// EditUsecase persists single-record edits.
type EditUsecase interface {
	// Commit PUTs record to the collection of kind, patches the store with the
	// submitted record and, when enabled, runs the full refetch.
	Commit(ctx context.Context, kind entity.Kind, record entity.Record) (entity.Record, error)

	// CommitLine sets field on the line at index of invoice. When the line's
	// product_id names a product in the catalog, the catalog record with that
	// field overwritten is committed. Otherwise the invoice is committed with
	// the edited line in place.
	CommitLine(ctx context.Context, invoice entity.Invoice, index int, field string, value any) (*LineCommit, error)
}
