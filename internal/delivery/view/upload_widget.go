package view

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "invoicedesk/internal/domain/errors"
	"invoicedesk/internal/domain/service"
	"invoicedesk/internal/usecase"

	"github.com/pkg/errors"
)

// Status strings shown by the upload widget.
const (
	StatusSucceeded     = "Upload successful! Data extracted."
	StatusFailedPrefix  = "Upload failed: "
	StatusFailedUnknown = "Unknown error"
	StatusFailedRetry   = "Upload failed. Please try again."
)

// Selection is the file chosen for the next upload.
type Selection struct {
	Location string
	Name     string
	Size     int64
}

// UploadWidget holds one pending selection, an in-flight flag and the
// status line of the last attempt.
type UploadWidget struct {
	source service.FileSource
	upload usecase.UploadUsecase
	logger *slog.Logger

	mu        sync.Mutex
	selection *Selection
	inFlight  bool
	status    string
	result    *service.UploadResult
}

// NewUploadWidget creates an empty widget.
func NewUploadWidget(source service.FileSource, uploadUsecase usecase.UploadUsecase, logger *slog.Logger) *UploadWidget {
	return &UploadWidget{
		source: source,
		upload: uploadUsecase,
		logger: logger,
	}
}

// Select records the file at location as the pending selection. On error
// the previous selection is kept.
func (w *UploadWidget) Select(ctx context.Context, location string) (*Selection, error) {
	name, size, err := w.source.Stat(ctx, location)
	if err != nil {
		return nil, errors.Wrap(err, "select file")
	}

	selection := &Selection{Location: location, Name: name, Size: size}

	w.mu.Lock()
	w.selection = selection
	w.mu.Unlock()

	copied := *selection

	return &copied, nil
}

// Submit uploads the pending selection and returns the resulting status.
// Without a selection it returns ErrNoFileSelected and touches nothing;
// while another submission runs it returns ErrUploadInFlight.
func (w *UploadWidget) Submit(ctx context.Context) (string, error) {
	w.mu.Lock()
	if w.selection == nil {
		w.mu.Unlock()

		return "", domainerrors.ErrNoFileSelected
	}
	if w.inFlight {
		w.mu.Unlock()

		return "", domainerrors.ErrUploadInFlight
	}
	w.inFlight = true
	w.status = ""
	selection := *w.selection
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.inFlight = false
		w.mu.Unlock()
	}()

	status, result, err := w.send(ctx, selection)

	w.mu.Lock()
	w.status = status
	if result != nil {
		w.result = result
	}
	w.mu.Unlock()

	return status, err
}

func (w *UploadWidget) send(ctx context.Context, selection Selection) (string, *service.UploadResult, error) {
	logger := w.logger.With(slog.String("location", selection.Location))

	file, err := w.source.Open(ctx, selection.Location)
	if err != nil {
		logger.Error("open upload file failed", slog.Any("error", err))

		return StatusFailedRetry, nil, errors.Wrap(err, "open file")
	}

	result, err := w.upload.Upload(ctx, file)
	if err != nil {
		return StatusFailedRetry, nil, err
	}

	if !result.Succeeded() {
		reason := result.Error
		if reason == "" {
			reason = StatusFailedUnknown
		}

		return StatusFailedPrefix + reason, nil, domainerrors.ErrUploadFailed.
			WithHTTPCode(result.StatusCode).
			WithDetails(reason)
	}

	return StatusSucceeded, result, nil
}

// Selected returns the pending selection, or nil.
func (w *UploadWidget) Selected() *Selection {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.selection == nil {
		return nil
	}
	copied := *w.selection

	return &copied
}

// Status returns the status line of the last completed submission.
func (w *UploadWidget) Status() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.status
}

// InFlight reports whether a submission is running.
func (w *UploadWidget) InFlight() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.inFlight
}

// Result returns the payload of the last successful upload, or nil.
func (w *UploadWidget) Result() *service.UploadResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.result
}
