package flightdocs

import (
	"context"
	"net/url"
	"sort"
	"strings"
)

// Record is a single document upload as reported by the catalogue API.
// Several records may share one DownloadURL when the same file is attached
// to more than one location.
type Record struct {
	ID          string `json:"id"`
	DownloadURL string `json:"downloadUrl"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Location    string `json:"location"`
}

// Document is the user-facing view of one downloadable file, carrying every
// location it is attached to.
type Document struct {
	ID          string   `json:"id"`
	DownloadURL string   `json:"downloadUrl"`
	Filename    string   `json:"filename"`
	ContentType string   `json:"contentType"`
	Locations   []string `json:"locations"`

	// Content is only populated when a single document is fetched.
	Content []byte `json:"-"`
}

// Location returns the document locations joined for display.
func (d *Document) Location() string {
	return strings.Join(d.Locations, ", ")
}

// Printable reports whether the document content is plain text.
func (d *Document) Printable() bool {
	return strings.HasPrefix(d.ContentType, "text/")
}

// DocumentService represents the catalogue API.
type DocumentService interface {
	// FindDocuments retrieves document records matching the filter.
	// Returns EUNAVAILABLE if the API cannot be reached.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Record, error)

	// FindDocumentByID retrieves a document record by its numeric ID.
	// Returns ENOTFOUND if the record does not exist.
	FindDocumentByID(ctx context.Context, id int) (*Record, error)

	// FetchContent downloads the file behind a record's download URL.
	// Returns ENOCONTENT if the file does not exist.
	FetchContent(ctx context.Context, downloadURL string) ([]byte, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	Filename *string `json:"filename"`
}

// MergeRecords collapses records sharing a download URL into one Document.
// The first record of each group provides the document fields; later records
// contribute only their location. Documents are returned in the order their
// download URL was first seen.
func MergeRecords(records []*Record) []*Document {
	docs := make([]*Document, 0, len(records))
	byURL := make(map[string]*Document, len(records))

	for _, rec := range records {
		if doc, ok := byURL[rec.DownloadURL]; ok {
			doc.Locations = append(doc.Locations, rec.Location)
			continue
		}

		doc := &Document{
			ID:          rec.ID,
			DownloadURL: rec.DownloadURL,
			Filename:    rec.Filename,
			ContentType: rec.ContentType,
			Locations:   []string{rec.Location},
		}
		byURL[rec.DownloadURL] = doc
		docs = append(docs, doc)
	}

	return docs
}

// SortDocuments orders documents by filename, ignoring case.
func SortDocuments(docs []*Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return strings.ToLower(docs[i].Filename) < strings.ToLower(docs[j].Filename)
	})
}

// RedactURL returns rawURL without its query, fragment or user info, for
// logging. Download URLs are often pre-signed with credentials in the query.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	u.User = nil
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
