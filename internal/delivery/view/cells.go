// Package view holds the editable tables and the upload widget.
package view

import (
	"fmt"
	"sync"

	domainerrors "invoicedesk/internal/domain/errors"
	"invoicedesk/internal/state"

	"github.com/pkg/errors"
)

// recordLevel is the line index of cells that belong to the record itself.
const recordLevel = -1

type rowKey struct {
	identity string
	line     int
}

type cellKey struct {
	row   rowKey
	field string
}

// cells keeps what the user typed into each cell and the outcome of the
// last commit per row. Typed values win over the store until the next
// replace, the way an uncontrolled input keeps its text.
type cells struct {
	mu        sync.Mutex
	overrides map[cellKey]string
	errs      map[rowKey]error
}

func newCells() *cells {
	return &cells{
		overrides: map[cellKey]string{},
		errs:      map[rowKey]error{},
	}
}

func (c *cells) value(row rowKey, field, fallback string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.overrides[cellKey{row: row, field: field}]; ok {
		return v
	}

	return fallback
}

func (c *cells) set(row rowKey, field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.overrides[cellKey{row: row, field: field}] = value
}

func (c *cells) record(row rowKey, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		delete(c.errs, row)

		return
	}
	c.errs[row] = err
}

func (c *cells) err(row rowKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errs[row]
}

func (c *cells) errText(row rowKey) string {
	return describe(c.err(row))
}

// onChange forgets everything once the store has been replaced.
func (c *cells) onChange(change state.Change) {
	if change.Op != state.OpReplace {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.overrides)
	clear(c.errs)
}

// describe renders err for the warning column.
func describe(err error) string {
	if err == nil {
		return ""
	}

	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.HTTPCode() > 0 && domainerrors.IsHTTP(err) {
		return fmt.Sprintf("%s (HTTP %d)", appErr.ErrorCode(), appErr.HTTPCode())
	}

	return appErr.ErrorCode()
}
