package flightdocs

import (
	"context"
	"strconv"
	"strings"
)

// Resolver turns catalogue records into documents and resolves the names
// and quick codes users type into a single document.
type Resolver struct {
	Documents DocumentService
	IDs       IDCodec
}

// ListDocuments returns every document, merged and sorted by filename.
func (r *Resolver) ListDocuments(ctx context.Context) ([]*Document, error) {
	return r.findDocuments(ctx, DocumentFilter{})
}

// FindDocument resolves a quick code or filename to exactly one document.
// Returns ENOTFOUND when nothing matches and *AmbiguousError when a
// filename matches more than one document.
func (r *Resolver) FindDocument(ctx context.Context, nameOrID string) (*Document, error) {
	nameOrID = strings.TrimSpace(nameOrID)
	if nameOrID == "" {
		return nil, Errorf(EINVALID, "DOCUMENT cannot be blank")
	}

	if r.IDs != nil {
		if id, ok := r.IDs.Decode(nameOrID); ok {
			rec, err := r.Documents.FindDocumentByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return MergeRecords([]*Record{rec})[0], nil
		}
	}

	docs, err := r.findDocuments(ctx, DocumentFilter{Filename: &nameOrID})
	if err != nil {
		return nil, err
	}

	switch len(docs) {
	case 0:
		return nil, Errorf(ENOTFOUND, "Unable to find document.")
	case 1:
		return docs[0], nil
	default:
		return nil, &AmbiguousError{Name: nameOrID, Documents: docs}
	}
}

// GetDocument resolves nameOrID and fetches the document content.
func (r *Resolver) GetDocument(ctx context.Context, nameOrID string) (*Document, error) {
	doc, err := r.FindDocument(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	content, err := r.Documents.FetchContent(ctx, doc.DownloadURL)
	if err != nil {
		return nil, err
	}
	doc.Content = content

	return doc, nil
}

// QuickCode returns the code users can pass to FindDocument for doc.
// Falls back to the raw ID when it is not numeric.
func (r *Resolver) QuickCode(doc *Document) string {
	if r.IDs == nil {
		return doc.ID
	}
	id, err := strconv.Atoi(doc.ID)
	if err != nil {
		return doc.ID
	}
	code, err := r.IDs.Encode(id)
	if err != nil {
		return doc.ID
	}
	return code
}

func (r *Resolver) findDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error) {
	records, err := r.Documents.FindDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	docs := MergeRecords(records)
	SortDocuments(docs)
	return docs, nil
}
