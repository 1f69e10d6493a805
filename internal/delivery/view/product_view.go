package view

import (
	"context"
	"io"
	"log/slog"

	"invoicedesk/config"
	"invoicedesk/internal/delivery/render"
	"invoicedesk/internal/domain/entity"
	domainerrors "invoicedesk/internal/domain/errors"
	"invoicedesk/internal/state"
	"invoicedesk/internal/usecase"

	"github.com/pkg/errors"
)

// ProductView is the editable product catalog.
type ProductView struct {
	store    *state.Store[entity.Product]
	sync     usecase.SyncUsecase
	edit     usecase.EditUsecase
	currency string
	logger   *slog.Logger

	mounted     onceFlag
	cells       *cells
	unsubscribe func()
}

// NewProductView creates the product table over the shared state.
func NewProductView(
	appState *state.AppState,
	syncUsecase usecase.SyncUsecase,
	editUsecase usecase.EditUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *ProductView {
	v := &ProductView{
		store:    appState.Products,
		sync:     syncUsecase,
		edit:     editUsecase,
		currency: cfg.Display.Currency,
		logger:   logger,
		cells:    newCells(),
	}
	v.unsubscribe = v.store.Subscribe(v.cells.onChange)

	return v
}

// Mount fetches products the first time the view is displayed.
func (v *ProductView) Mount(ctx context.Context) {
	if v.mounted.first() {
		_ = v.sync.Fetch(ctx, entity.KindProduct)
	}
}

// Close stops listening to the store.
func (v *ProductView) Close() {
	v.unsubscribe()
}

// Rows returns the table from one snapshot of the store.
func (v *ProductView) Rows() []render.ProductRow {
	products := v.store.Snapshot()
	rows := make([]render.ProductRow, 0, len(products))

	for _, product := range products {
		key := rowKey{identity: product.ID(), line: recordLevel}
		rows = append(rows, render.ProductRow{
			Identity:     product.ID(),
			Name:         v.cells.value(key, entity.FieldProductName, orDefault(product.Name(), placeholder)),
			Quantity:     v.cells.value(key, entity.FieldQuantity, orDefault(product.Quantity(), "0")),
			UnitPrice:    v.cells.value(key, entity.FieldUnitPrice, render.Amount(product.UnitPrice())),
			Tax:          v.cells.value(key, entity.FieldTax, product.Tax().String()),
			PriceWithTax: render.Money(product.PriceWithTax(), v.currency),
			Err:          v.cells.errText(key),
		})
	}

	return rows
}

// Blur commits value into field of the product identified by identity.
func (v *ProductView) Blur(ctx context.Context, identity, field, value string) error {
	if !entity.KindProduct.CanEdit(field) {
		return domainerrors.ErrFieldNotEditable.WithDetailsf("products.%s", field)
	}

	product, _, ok := v.store.Find(identity)
	if !ok {
		return domainerrors.ErrRowNotFound.WithDetailsf("product %s", identity)
	}

	key := rowKey{identity: identity, line: recordLevel}
	v.cells.set(key, field, value)

	_, err := v.edit.Commit(ctx, entity.KindProduct, product.Record().With(field, value))
	v.cells.record(key, err)

	return errors.WithStack(err)
}

// Render writes the product table as markdown.
func (v *ProductView) Render(w io.Writer) {
	render.Products(w, v.Rows())
}
