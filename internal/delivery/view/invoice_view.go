package view

import (
	"context"
	"io"
	"log/slog"

	"invoicedesk/internal/delivery/render"
	"invoicedesk/internal/domain/entity"
	domainerrors "invoicedesk/internal/domain/errors"
	"invoicedesk/internal/state"
	"invoicedesk/internal/usecase"

	"github.com/pkg/errors"
)

const placeholder = "---"

// InvoiceView is the editable invoice table.
type InvoiceView struct {
	store  *state.Store[entity.Invoice]
	sync   usecase.SyncUsecase
	edit   usecase.EditUsecase
	logger *slog.Logger

	mounted     onceFlag
	cells       *cells
	unsubscribe func()
}

// NewInvoiceView creates the invoice table over the shared state.
func NewInvoiceView(appState *state.AppState, syncUsecase usecase.SyncUsecase, editUsecase usecase.EditUsecase, logger *slog.Logger) *InvoiceView {
	v := &InvoiceView{
		store:  appState.Invoices,
		sync:   syncUsecase,
		edit:   editUsecase,
		logger: logger,
		cells:  newCells(),
	}
	v.unsubscribe = v.store.Subscribe(v.cells.onChange)

	return v
}

// Mount fetches invoices the first time the view is displayed. A failed
// fetch leaves the previous contents on screen.
func (v *InvoiceView) Mount(ctx context.Context) {
	if v.mounted.first() {
		_ = v.sync.Fetch(ctx, entity.KindInvoice)
	}
}

// Close stops listening to the store.
func (v *InvoiceView) Close() {
	v.unsubscribe()
}

// Rows returns the table from one snapshot of the store.
func (v *InvoiceView) Rows() []render.InvoiceRow {
	invoices := v.store.Snapshot()
	rows := make([]render.InvoiceRow, 0, len(invoices))

	for i, invoice := range invoices {
		id := invoice.Number()
		key := rowKey{identity: id, line: recordLevel}

		row := render.InvoiceRow{
			Position:     i + 1,
			Identity:     id,
			CustomerName: v.cells.value(key, entity.FieldCustomerName, orDefault(invoice.CustomerName(), placeholder)),
			TotalAmount:  v.cells.value(key, entity.FieldTotalAmount, render.Amount(invoice.TotalAmount())),
			Date:         v.cells.value(key, entity.FieldDate, orDefault(invoice.Date(), placeholder)),
			Err:          v.cells.errText(key),
		}
		for j, line := range invoice.Lines() {
			lineKey := rowKey{identity: id, line: j}
			row.Lines = append(row.Lines, render.InvoiceLine{
				ProductName: v.cells.value(lineKey, entity.FieldProductName, line.Name()),
				Quantity:    v.cells.value(lineKey, entity.FieldQuantity, line.Quantity()),
				Tax:         v.cells.value(lineKey, entity.FieldTax, line.Tax()),
				Err:         v.cells.errText(lineKey),
			})
		}
		rows = append(rows, row)
	}

	return rows
}

// Blur commits value into field of the invoice identified by identity. line
// selects an embedded product line, or -1 for the invoice's own fields.
func (v *InvoiceView) Blur(ctx context.Context, identity string, line int, field, value string) error {
	if line < 0 {
		return v.blurInvoice(ctx, identity, field, value)
	}

	return v.blurLine(ctx, identity, line, field, value)
}

func (v *InvoiceView) blurInvoice(ctx context.Context, identity, field, value string) error {
	if !entity.KindInvoice.CanEdit(field) {
		return domainerrors.ErrFieldNotEditable.WithDetailsf("invoices.%s", field)
	}

	invoice, _, ok := v.store.Find(identity)
	if !ok {
		return domainerrors.ErrRowNotFound.WithDetailsf("invoice %s", identity)
	}

	key := rowKey{identity: identity, line: recordLevel}
	v.cells.set(key, field, value)

	_, err := v.edit.Commit(ctx, entity.KindInvoice, invoice.Record().With(field, value))
	v.cells.record(key, err)

	return errors.WithStack(err)
}

func (v *InvoiceView) blurLine(ctx context.Context, identity string, line int, field, value string) error {
	if !entity.CanEditLine(field) {
		return domainerrors.ErrFieldNotEditable.WithDetailsf("invoices.products.%s", field)
	}

	invoice, _, ok := v.store.Find(identity)
	if !ok {
		return domainerrors.ErrRowNotFound.WithDetailsf("invoice %s", identity)
	}
	lines := invoice.Lines()
	if line >= len(lines) {
		return domainerrors.ErrRowNotFound.WithDetailsf("invoice %s line %d", identity, line)
	}

	key := rowKey{identity: identity, line: line}
	v.cells.set(key, field, value)

	_, err := v.edit.CommitLine(ctx, invoice, line, field, value)
	v.cells.record(key, err)

	return errors.WithStack(err)
}

// Render writes the invoice table as markdown.
func (v *InvoiceView) Render(w io.Writer) {
	render.Invoices(w, v.Rows())
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
