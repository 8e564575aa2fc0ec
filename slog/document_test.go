package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alces-flight/flightdocs"
	"github.com/alces-flight/flightdocs/mock"
	fdslog "github.com/alces-flight/flightdocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("logs filename, count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ flightdocs.DocumentFilter) ([]*flightdocs.Record, error) {
				return []*flightdocs.Record{{ID: "1"}, {ID: "2"}}, nil
			},
		}

		svc := fdslog.NewLoggingDocumentService(inner, newDebugLogger(&buf))
		name := "guide.md"
		records, err := svc.FindDocuments(context.Background(), flightdocs.DocumentFilter{Filename: &name})

		require.NoError(t, err)
		assert.Len(t, records, 2)
		output := buf.String()
		assert.Contains(t, output, "find documents")
		assert.Contains(t, output, "filename=guide.md")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ flightdocs.DocumentFilter) ([]*flightdocs.Record, error) {
				return nil, errors.New("network error")
			},
		}

		svc := fdslog.NewLoggingDocumentService(inner, newDebugLogger(&buf))
		_, err := svc.FindDocuments(context.Background(), flightdocs.DocumentFilter{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ flightdocs.DocumentFilter) ([]*flightdocs.Record, error) {
				return nil, nil
			},
		}

		svc := fdslog.NewLoggingDocumentService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := svc.FindDocuments(context.Background(), flightdocs.DocumentFilter{})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.DocumentService{
		FindDocumentByIDFn: func(_ context.Context, id int) (*flightdocs.Record, error) {
			return &flightdocs.Record{ID: "42"}, nil
		},
	}

	svc := fdslog.NewLoggingDocumentService(inner, newDebugLogger(&buf))
	rec, err := svc.FindDocumentByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "42", rec.ID)
	assert.Contains(t, buf.String(), "find document")
	assert.Contains(t, buf.String(), "id=42")
}

func TestLoggingDocumentService_FetchContent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.DocumentService{
		FetchContentFn: func(_ context.Context, _ string) ([]byte, error) {
			return []byte("# Guide"), nil
		},
	}

	svc := fdslog.NewLoggingDocumentService(inner, newDebugLogger(&buf))
	content, err := svc.FetchContent(context.Background(), "https://files.example.com/guide")

	require.NoError(t, err)
	assert.Equal(t, []byte("# Guide"), content)
	output := buf.String()
	assert.Contains(t, output, "fetch content")
	assert.Contains(t, output, "url=https://files.example.com/guide")
	assert.Contains(t, output, "bytes=7")
}

func TestLoggingDocumentService_FetchContent_RedactsQuery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.DocumentService{
		FetchContentFn: func(_ context.Context, _ string) ([]byte, error) {
			return []byte("data"), nil
		},
	}

	svc := fdslog.NewLoggingDocumentService(inner, newDebugLogger(&buf))
	_, err := svc.FetchContent(context.Background(), "https://files.example.com/guide?X-Amz-Signature=topsecret")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "url=https://files.example.com/guide")
	assert.NotContains(t, buf.String(), "topsecret")
}
