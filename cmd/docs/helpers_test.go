package main_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/alces-flight/flightdocs"
	main "github.com/alces-flight/flightdocs/cmd/docs"
	"github.com/alces-flight/flightdocs/mock"
)

// prefixCodes encodes ids as "qc-<id>".
func prefixCodes() *mock.IDCodec {
	return &mock.IDCodec{
		EncodeFn: func(id int) (string, error) { return "qc-" + strconv.Itoa(id), nil },
		DecodeFn: func(s string) (int, bool) {
			rest, ok := strings.CutPrefix(s, "qc-")
			if !ok {
				return 0, false
			}
			id, err := strconv.Atoi(rest)
			return id, err == nil
		},
	}
}

// newDeps returns signed-in, non-interactive dependencies backed by svc.
func newDeps(svc flightdocs.DocumentService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Config: &flightdocs.Config{AuthToken: "secret"},
		Resolver: &flightdocs.Resolver{
			Documents: svc,
			IDs:       prefixCodes(),
		},
		Width: 80,
	}, stdout, stderr
}

// catalogue serves a fixed set of records. Filename filters match exactly.
func catalogue(records ...*flightdocs.Record) *mock.DocumentService {
	return &mock.DocumentService{
		FindDocumentsFn: func(_ context.Context, filter flightdocs.DocumentFilter) ([]*flightdocs.Record, error) {
			if filter.Filename == nil {
				return records, nil
			}
			var matched []*flightdocs.Record
			for _, rec := range records {
				if rec.Filename == *filter.Filename {
					matched = append(matched, rec)
				}
			}
			return matched, nil
		},
		FindDocumentByIDFn: func(_ context.Context, id int) (*flightdocs.Record, error) {
			for _, rec := range records {
				if rec.ID == strconv.Itoa(id) {
					return rec, nil
				}
			}
			return nil, flightdocs.Errorf(flightdocs.ENOTFOUND, "Unable to find document.")
		},
		FetchContentFn: func(_ context.Context, downloadURL string) ([]byte, error) {
			return []byte("content of " + downloadURL), nil
		},
	}
}
