// Package slog provides logging decorators for flightdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/alces-flight/flightdocs"
)

// Ensure LoggingDocumentService implements flightdocs.DocumentService.
var _ flightdocs.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with debug logging.
type LoggingDocumentService struct {
	next   flightdocs.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next flightdocs.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// FindDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter flightdocs.DocumentFilter) (records []*flightdocs.Record, err error) {
	defer func(begin time.Time) {
		filename := ""
		if filter.Filename != nil {
			filename = *filter.Filename
		}
		s.logger.Debug("find documents",
			"filename", filename,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocuments(ctx, filter)
}

// FindDocumentByID delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id int) (rec *flightdocs.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find document",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocumentByID(ctx, id)
}

// FetchContent delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FetchContent(ctx context.Context, downloadURL string) (content []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("fetch content",
			"url", flightdocs.RedactURL(downloadURL),
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchContent(ctx, downloadURL)
}
