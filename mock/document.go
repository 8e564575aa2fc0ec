package mock

import (
	"context"

	"github.com/alces-flight/flightdocs"
)

var _ flightdocs.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of flightdocs.DocumentService.
type DocumentService struct {
	FindDocumentsFn    func(ctx context.Context, filter flightdocs.DocumentFilter) ([]*flightdocs.Record, error)
	FindDocumentByIDFn func(ctx context.Context, id int) (*flightdocs.Record, error)
	FetchContentFn     func(ctx context.Context, downloadURL string) ([]byte, error)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter flightdocs.DocumentFilter) ([]*flightdocs.Record, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id int) (*flightdocs.Record, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FetchContent(ctx context.Context, downloadURL string) ([]byte, error) {
	return s.FetchContentFn(ctx, downloadURL)
}
