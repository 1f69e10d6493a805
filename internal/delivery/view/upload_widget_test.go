package view

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"invoicedesk/internal/backendtest"
	domainerrors "invoicedesk/internal/domain/errors"
	"invoicedesk/internal/mocks"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func noListCalls() map[string]int {
	return map[string]int{"/api/invoices": 0, "/api/products": 0, "/api/customers": 0}
}

func TestUploadWidget_SubmitWithoutSelection(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	w := h.uploadWidget()

	status, err := w.Submit(context.Background())

	require.ErrorIs(t, err, domainerrors.ErrNoFileSelected)
	assert.Equal(t, "Please select a file first!", err.Error())
	assert.Empty(t, status)
	assert.Empty(t, w.Status())
	assert.False(t, w.InFlight())
	assert.Zero(t, h.totalRequests())
}

func TestUploadWidget_SelectKeepsPreviousOnError(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	w := h.uploadWidget()
	ctx := context.Background()
	path := writeDocument(t, "scan.pdf", "%PDF-1.4")

	selection, err := w.Select(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", selection.Name)
	assert.Equal(t, int64(8), selection.Size)

	_, err = w.Select(ctx, filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Equal(t, path, w.Selected().Location)
}

func TestUploadWidget_SuccessRefetchesEverything(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	h.backend.ReplyToUpload(backendtest.Reply{Status: http.StatusOK, Body: map[string]any{"message": "ok"}})
	w := h.uploadWidget()
	ctx := context.Background()

	_, err := w.Select(ctx, writeDocument(t, "sheet.xlsx", "cells"))
	require.NoError(t, err)

	status, err := w.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, StatusSucceeded, status)
	assert.Equal(t, StatusSucceeded, w.Status())
	assert.Equal(t, "ok", w.Result().Message)
	assert.Equal(t, map[string]int{"/api/invoices": 1, "/api/products": 1, "/api/customers": 1}, h.listCalls())

	uploads := h.backend.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "sheet.xlsx", uploads[0].Filename)
	assert.Equal(t, []byte("cells"), uploads[0].Content)
}

func TestUploadWidget_FailureShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		reply  backendtest.Reply
		status string
	}{
		{
			name:   "error body with 200",
			reply:  backendtest.Reply{Status: http.StatusOK, Body: map[string]any{"error": "bad file"}},
			status: "Upload failed: bad file",
		},
		{
			name:   "error body with 500",
			reply:  backendtest.Reply{Status: http.StatusInternalServerError, Body: map[string]any{"error": "parse failed"}},
			status: "Upload failed: parse failed",
		},
		{
			name:   "neither member",
			reply:  backendtest.Reply{Status: http.StatusOK, Body: map[string]any{}},
			status: "Upload failed: Unknown error",
		},
		{
			name:   "not json",
			reply:  backendtest.Reply{Status: http.StatusBadGateway, Body: "<html>bad gateway</html>"},
			status: StatusFailedRetry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, true)
			h.backend.ReplyToUpload(tt.reply)
			w := h.uploadWidget()
			ctx := context.Background()

			_, err := w.Select(ctx, writeDocument(t, "doc.pdf", "x"))
			require.NoError(t, err)

			status, err := w.Submit(ctx)
			require.Error(t, err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, w.Status())
			assert.False(t, w.InFlight())
			assert.Nil(t, w.Result())
			assert.Equal(t, noListCalls(), h.listCalls())
		})
	}
}

func TestUploadWidget_NetworkFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	w := h.uploadWidget()
	ctx := context.Background()

	_, err := w.Select(ctx, writeDocument(t, "doc.pdf", "x"))
	require.NoError(t, err)
	h.backend.Close()

	status, err := w.Submit(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNetwork(err))
	assert.Equal(t, StatusFailedRetry, status)
	assert.False(t, w.InFlight())
}

func TestUploadWidget_RefusesConcurrentSubmit(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	release := h.backend.HoldUploads()
	t.Cleanup(release)
	w := h.uploadWidget()
	ctx := context.Background()

	_, err := w.Select(ctx, writeDocument(t, "doc.pdf", "x"))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(ctx)
		done <- err
	}()

	require.Eventually(t, func() bool {
		return len(h.backend.Uploads()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, w.InFlight())

	_, err = w.Submit(ctx)
	require.ErrorIs(t, err, domainerrors.ErrUploadInFlight)

	release()
	require.NoError(t, <-done)

	assert.False(t, w.InFlight())
	assert.Len(t, h.backend.Uploads(), 1)
	assert.Equal(t, StatusSucceeded, w.Status())
}

func TestUploadWidget_ClearsStatusWhileInFlight(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	w := h.uploadWidget()
	ctx := context.Background()

	_, err := w.Select(ctx, writeDocument(t, "doc.pdf", "x"))
	require.NoError(t, err)

	h.backend.ReplyToUpload(backendtest.Reply{Status: http.StatusOK, Body: map[string]any{"error": "bad file"}})
	status, err := w.Submit(ctx)
	require.Error(t, err)
	require.Equal(t, StatusFailedPrefix+"bad file", status)
	require.Equal(t, status, w.Status())

	h.backend.ReplyToUpload(backendtest.Reply{Status: http.StatusOK, Body: map[string]any{"message": "File processed successfully!"}})
	release := h.backend.HoldUploads()
	t.Cleanup(release)

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(ctx)
		done <- err
	}()

	require.Eventually(t, func() bool {
		return len(h.backend.Uploads()) == 2
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, w.InFlight())
	assert.Empty(t, w.Status())

	release()
	require.NoError(t, <-done)
	assert.Equal(t, StatusSucceeded, w.Status())
}

func TestUploadWidget_OpenFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	source := mocks.NewMockFileSource(t)
	w := NewUploadWidget(source, h.upload, h.logger)
	ctx := context.Background()

	source.EXPECT().Stat(mock.Anything, "s3://bucket/doc.pdf").Return("doc.pdf", 3, nil).Once()
	source.EXPECT().Open(mock.Anything, "s3://bucket/doc.pdf").Return(nil, errors.New("access denied")).Once()

	_, err := w.Select(ctx, "s3://bucket/doc.pdf")
	require.NoError(t, err)

	status, err := w.Submit(ctx)
	require.Error(t, err)
	assert.Equal(t, StatusFailedRetry, status)
	assert.False(t, w.InFlight())
	assert.Zero(t, h.totalRequests())
}
