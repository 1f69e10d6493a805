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

// CustomerView is the editable customer table.
type CustomerView struct {
	store  *state.Store[entity.Customer]
	sync   usecase.SyncUsecase
	edit   usecase.EditUsecase
	logger *slog.Logger

	mounted     onceFlag
	cells       *cells
	unsubscribe func()
}

// NewCustomerView creates the customer table over the shared state.
func NewCustomerView(appState *state.AppState, syncUsecase usecase.SyncUsecase, editUsecase usecase.EditUsecase, logger *slog.Logger) *CustomerView {
	v := &CustomerView{
		store:  appState.Customers,
		sync:   syncUsecase,
		edit:   editUsecase,
		logger: logger,
		cells:  newCells(),
	}
	v.unsubscribe = v.store.Subscribe(v.cells.onChange)

	return v
}

// Mount fetches customers the first time the view is displayed.
func (v *CustomerView) Mount(ctx context.Context) {
	if v.mounted.first() {
		_ = v.sync.Fetch(ctx, entity.KindCustomer)
	}
}

// Close stops listening to the store.
func (v *CustomerView) Close() {
	v.unsubscribe()
}

// Rows returns the table from one snapshot of the store.
func (v *CustomerView) Rows() []render.CustomerRow {
	customers := v.store.Snapshot()
	rows := make([]render.CustomerRow, 0, len(customers))

	for _, customer := range customers {
		key := rowKey{identity: customer.ID(), line: recordLevel}
		rows = append(rows, render.CustomerRow{
			Identity:      customer.ID(),
			Name:          v.cells.value(key, entity.FieldCustomerName, orDefault(customer.Name(), placeholder)),
			Phone:         v.cells.value(key, entity.FieldPhoneNumber, orDefault(customer.Phone(), "N/A")),
			TotalPurchase: v.cells.value(key, entity.FieldTotalPurchase, render.Amount(customer.TotalPurchase())),
			Err:           v.cells.errText(key),
		})
	}

	return rows
}

// Blur commits value into field of the customer identified by identity.
func (v *CustomerView) Blur(ctx context.Context, identity, field, value string) error {
	if !entity.KindCustomer.CanEdit(field) {
		return domainerrors.ErrFieldNotEditable.WithDetailsf("customers.%s", field)
	}

	customer, _, ok := v.store.Find(identity)
	if !ok {
		return domainerrors.ErrRowNotFound.WithDetailsf("customer %s", identity)
	}

	key := rowKey{identity: identity, line: recordLevel}
	v.cells.set(key, field, value)

	_, err := v.edit.Commit(ctx, entity.KindCustomer, customer.Record().With(field, value))
	v.cells.record(key, err)

	return errors.WithStack(err)
}

// Render writes the customer table as markdown.
func (v *CustomerView) Render(w io.Writer) {
	render.Customers(w, v.Rows())
}
