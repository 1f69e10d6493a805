package service

import (
	"context"
	"encoding/json"
	"io"

	"invoicedesk/internal/domain/entity"
)

// UploadResult is the decoded body of an upload response. The backend may
// answer 200 with an error-shaped body, so callers decide success from the
// payload (Succeeded), never from StatusCode alone.
type UploadResult struct {
	StatusCode int             `json:"-"`
	Message    string          `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// Succeeded reports whether the payload carries the success indicator.
func (r *UploadResult) Succeeded() bool {
	return r != nil && r.Message != ""
}

// Extracted holds the collections the server extracted from an uploaded
// document, as echoed back in UploadResult.Data.
type Extracted struct {
	Invoices  []entity.Record `json:"invoices"`
	Products  []entity.Record `json:"products"`
	Customers []entity.Record `json:"customers"`
}

// Extracted decodes Data. A missing data member yields an empty value.
func (r *UploadResult) Extracted() (*Extracted, error) {
	out := &Extracted{}
	if r == nil || len(r.Data) == 0 || string(r.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(r.Data, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Status is the payload of the liveness probe.
type Status map[string]any

// File is one document selected for upload.
type File struct {
	Name string
	Size int64
	Body io.ReadCloser
}

// Gateway defines the REST operations the client issues. Implementations
// neither retry nor impose a timeout; each call is independent.
type Gateway interface {
	// ListInvoices returns the full invoice collection in server order.
	ListInvoices(ctx context.Context) ([]entity.Invoice, error)

	// ListProducts returns the full product catalog in server order.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// ListCustomers returns the full customer collection in server order.
	ListCustomers(ctx context.Context) ([]entity.Customer, error)

	// UpdateEntity PUTs record under identity and returns the submitted record
	// verbatim on a 2xx answer. Any other status fails with an
	// UPDATE_REJECTED error.
	UpdateEntity(ctx context.Context, kind entity.Kind, identity string, record entity.Record) (entity.Record, error)

	// UploadFile posts file as multipart field "file" and returns the decoded
	// payload whatever the HTTP status.
	UploadFile(ctx context.Context, file *File) (*UploadResult, error)

	// Status calls the liveness probe.
	Status(ctx context.Context) (Status, error)
}

// FileSource resolves a location (a path or a blob URL) to a readable file.
type FileSource interface {
	// Stat returns the name and size of the file at location without reading it.
	Stat(ctx context.Context, location string) (name string, size int64, err error)

	// Open opens the file at location. The caller closes File.Body.
	Open(ctx context.Context, location string) (*File, error)
}
