package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alces-flight/flightdocs"
	main "github.com/alces-flight/flightdocs/cmd/docs"
	"github.com/alces-flight/flightdocs/fs"
	"github.com/alces-flight/flightdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadCmd_Run(t *testing.T) {
	t.Parallel()

	report := &flightdocs.Record{ID: "4", DownloadURL: "u4", Filename: "report.pdf", ContentType: "application/pdf", Location: "Site A"}

	t.Run("saves to the document filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		deps, stdout, _ := newDeps(catalogue(report))
		deps.Writer = fs.NewWriter(dir)

		err := (&main.DownloadCmd{Document: "qc-4"}).Run(deps)

		require.NoError(t, err)
		path := filepath.Join(dir, "report.pdf")
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "content of u4", string(data))
		assert.Contains(t, stdout.String(), "Saving binary file to")
		assert.Contains(t, stdout.String(), path)
	})

	t.Run("saves to the output path", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(catalogue(report))
		var gotPath string
		deps.Writer = &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, _ *flightdocs.Document, path string) (string, error) {
				gotPath = path
				return path, nil
			},
		}

		err := (&main.DownloadCmd{Document: "report.pdf", Output: "out.pdf"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "out.pdf", gotPath)
	})

	t.Run("spins with download status when interactive", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(catalogue(report))
		deps.Interactive = true
		deps.Writer = &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, doc *flightdocs.Document, _ string) (string, error) {
				return doc.Filename, nil
			},
		}
		var statuses []string
		deps.Spin = func(status string, fn func() error) error {
			statuses = append(statuses, status)
			return fn()
		}

		err := (&main.DownloadCmd{Document: "qc-4"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"Downloading document qc-4"}, statuses)
	})

	t.Run("returns content error without writing", func(t *testing.T) {
		t.Parallel()

		svc := catalogue(report)
		svc.FetchContentFn = func(context.Context, string) ([]byte, error) {
			return nil, flightdocs.Errorf(flightdocs.ENOCONTENT, "Unable to download document.")
		}
		deps, _, _ := newDeps(svc)
		deps.Writer = &mock.DocumentWriter{
			WriteDocumentFn: func(context.Context, *flightdocs.Document, string) (string, error) {
				t.Fatal("nothing should be written")
				return "", nil
			},
		}

		err := (&main.DownloadCmd{Document: "report.pdf"}).Run(deps)

		assert.Equal(t, flightdocs.ENOCONTENT, flightdocs.ErrorCode(err))
	})
}
