// Package rest implements service.Gateway over the backend's JSON REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"invoicedesk/config"
	"invoicedesk/internal/domain/entity"
	domainerrors "invoicedesk/internal/domain/errors"
	"invoicedesk/internal/domain/service"
	logs "invoicedesk/internal/infra/log"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	pathStatus = "/api/status"
	pathUpload = "/api/upload"

	uploadField = "file"

	// errorBodyLimit caps how much of a rejected response is kept in the error.
	errorBodyLimit = 512
)

// Params defines the parameters required for the gateway
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *http.Client `optional:"true"`
}

// gateway issues one HTTP request per call. It never retries and sets no
// timeout of its own; callers bound a call through its context.
type gateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewGateway creates the REST gateway for the configured base URL.
func NewGateway(params Params) service.Gateway {
	client := params.Client
	if client == nil {
		client = &http.Client{}
	}

	return &gateway{
		baseURL: strings.TrimRight(params.Config.API.BaseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// ListInvoices implements service.Gateway.
func (g *gateway) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	return list[entity.Invoice](ctx, g, entity.KindInvoice)
}

// ListProducts implements service.Gateway.
func (g *gateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return list[entity.Product](ctx, g, entity.KindProduct)
}

// ListCustomers implements service.Gateway.
func (g *gateway) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return list[entity.Customer](ctx, g, entity.KindCustomer)
}

func list[T ~map[string]any](ctx context.Context, g *gateway, kind entity.Kind) ([]T, error) {
	resp, err := g.do(ctx, http.MethodGet, kind.Path(), nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, domainerrors.ErrHTTPStatus.
			WithHTTPCode(resp.StatusCode).
			WithDetailsf("GET %s: %s", kind.Path(), readErrorBody(resp.Body))
	}

	var items []T
	if err := decodeJSON(resp.Body, &items); err != nil {
		return nil, domainerrors.ErrPayload.
			WithHTTPCode(resp.StatusCode).
			WithDetailsf("GET %s", kind.Path()).
			WithCause(err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// UpdateEntity implements service.Gateway.
func (g *gateway) UpdateEntity(ctx context.Context, kind entity.Kind, identity string, record entity.Record) (entity.Record, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, domainerrors.ErrPayload.WithDetails("encode record").WithCause(err)
	}

	path := kind.Path() + "/" + url.PathEscape(identity)
	resp, err := g.do(ctx, http.MethodPut, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, domainerrors.ErrUpdateRejected.
			WithHTTPCode(resp.StatusCode).
			WithDetailsf("PUT %s: %s", path, readErrorBody(resp.Body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	// The acknowledgement body carries nothing the client uses.
	return record, nil
}

// UploadFile implements service.Gateway.
func (g *gateway) UploadFile(ctx context.Context, file *service.File) (*service.UploadResult, error) {
	if file == nil || file.Body == nil {
		return nil, domainerrors.ErrNoFileSelected
	}
	defer file.Body.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(uploadField, file.Name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := io.Copy(part, file.Body); err != nil {
		return nil, errors.Wrapf(err, "read %s", file.Name)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := g.do(ctx, http.MethodPost, pathUpload, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	result := &service.UploadResult{}
	if err := decodeJSON(resp.Body, result); err != nil {
		return nil, domainerrors.ErrPayload.
			WithHTTPCode(resp.StatusCode).
			WithDetailsf("POST %s", pathUpload).
			WithCause(err)
	}
	result.StatusCode = resp.StatusCode

	return result, nil
}

// Status implements service.Gateway.
func (g *gateway) Status(ctx context.Context) (service.Status, error) {
	resp, err := g.do(ctx, http.MethodGet, pathStatus, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, domainerrors.ErrHTTPStatus.
			WithHTTPCode(resp.StatusCode).
			WithDetailsf("GET %s: %s", pathStatus, readErrorBody(resp.Body))
	}

	var status service.Status
	if err := decodeJSON(resp.Body, &status); err != nil {
		return nil, domainerrors.ErrPayload.WithDetailsf("GET %s", pathStatus).WithCause(err)
	}

	return status, nil
}

// do sends one request tagged with a request ID and logs its outcome.
// A transport failure is returned as a network error.
func (g *gateway) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	ctx, logger := logs.Scoped(ctx, g.logger)

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(logs.HeaderXRequestID, logs.RequestIDFromContext(ctx))

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		logger.WarnContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("latency", time.Since(start)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrNetwork.WithDetailsf("%s %s", method, path).WithCause(err)
	}

	logLevel := slog.LevelDebug
	if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	}
	logger.LogAttrs(ctx, logLevel, "HTTP Response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func decodeJSON(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	return errors.WithStack(decoder.Decode(v))
}

// readErrorBody returns the "error" member of a JSON body, or the start of
// the raw body.
func readErrorBody(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, errorBodyLimit))

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	return strings.TrimSpace(string(raw))
}
