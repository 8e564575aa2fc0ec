// Package http implements flightdocs.DocumentService against the Flight
// Center catalogue, a JSON:API service.
package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alces-flight/flightdocs"
	"github.com/google/uuid"
)

// Ensure DocumentService implements flightdocs.DocumentService at compile time.
var _ flightdocs.DocumentService = (*DocumentService)(nil)

// DocumentService retrieves document records and content over HTTP.
type DocumentService struct {
	baseURL   string
	token     string
	userAgent string
	timeout   time.Duration
	insecure  bool
	logger    *slog.Logger
	client    *http.Client
}

// Option configures a DocumentService.
type Option func(*DocumentService)

// WithTimeout sets the timeout for each HTTP request.
// Requests do not time out unless this is set.
func WithTimeout(d time.Duration) Option {
	return func(s *DocumentService) {
		s.timeout = d
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(s *DocumentService) {
		s.insecure = skip
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *DocumentService) {
		s.userAgent = ua
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *DocumentService) {
		s.logger = logger
	}
}

// NewDocumentService creates a DocumentService for the API at baseURL,
// authenticating with token.
func NewDocumentService(baseURL, token string, opts ...Option) *DocumentService {
	s := &DocumentService{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		token:     token,
		userAgent: "Flight-Docs/" + flightdocs.Version,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if s.insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via verify_ssl: false
	}
	s.client = &http.Client{
		Timeout:   s.timeout,
		Transport: transport,
	}

	return s
}

// FindDocuments lists document records, optionally restricted to an exact
// filename.
func (s *DocumentService) FindDocuments(ctx context.Context, filter flightdocs.DocumentFilter) ([]*flightdocs.Record, error) {
	q := documentQuery()
	if filter.Filename != nil {
		q.Set("filter[filename]", *filter.Filename)
	}

	body, status, err := s.get(ctx, s.baseURL+"/documents?"+q.Encode(), true)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusError(status)
	}

	p, err := decodePayload(body)
	if err != nil {
		return nil, err
	}
	return p.records(), nil
}

// FindDocumentByID retrieves a single document record.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id int) (*flightdocs.Record, error) {
	u := s.baseURL + "/documents/" + strconv.Itoa(id) + "?" + documentQuery().Encode()

	body, status, err := s.get(ctx, u, true)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusForbidden:
		return nil, flightdocs.Errorf(flightdocs.ENOTFOUND, "Unable to find document.")
	default:
		return nil, statusError(status)
	}

	p, err := decodePayload(body)
	if err != nil {
		return nil, err
	}
	records := p.records()
	if len(records) == 0 {
		return nil, flightdocs.Errorf(flightdocs.ENOTFOUND, "Unable to find document.")
	}
	return records[0], nil
}

// FetchContent downloads a document file. Redirects are followed and no
// credentials are sent.
func (s *DocumentService) FetchContent(ctx context.Context, downloadURL string) ([]byte, error) {
	if downloadURL == "" {
		return nil, flightdocs.Errorf(flightdocs.ENOCONTENT, "Unable to download document.")
	}

	body, status, err := s.get(ctx, downloadURL, false)
	if err != nil {
		return nil, err
	}
	switch {
	case status >= 200 && status < 300:
		return body, nil
	case status == http.StatusNotFound:
		return nil, flightdocs.Errorf(flightdocs.ENOCONTENT, "Unable to download document.")
	default:
		return nil, statusError(status)
	}
}

// get performs a GET request and returns the body and status code.
// Transport failures are reported as EUNAVAILABLE.
func (s *DocumentService) get(ctx context.Context, rawURL string, auth bool) (body []byte, status int, err error) {
	requestID := uuid.NewString()
	defer func(begin time.Time) {
		s.logger.Debug("api request",
			"method", http.MethodGet,
			"url", flightdocs.RedactURL(rawURL),
			"status", status,
			"request_id", requestID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if auth {
		req.Header.Set("Accept", "application/vnd.api+json")
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, ctxErr
		}
		return nil, 0, flightdocs.Errorf(flightdocs.EUNAVAILABLE, "Unable to connect to API server.")
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, flightdocs.Errorf(flightdocs.EUNAVAILABLE, "Unable to connect to API server.")
	}
	return body, resp.StatusCode, nil
}

func statusError(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return flightdocs.Errorf(flightdocs.ENOTSIGNEDIN, "You are not signed in.")
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return flightdocs.Errorf(flightdocs.EUNAVAILABLE, "Unable to connect to API server.")
	}
	return fmt.Errorf("unexpected API response: HTTP %d", status)
}

// documentQuery returns the include and sparse fieldset parameters needed to
// derive record locations.
func documentQuery() url.Values {
	q := url.Values{}
	q.Set("include", "containers,record")
	q.Set("fields[cases]", "display_id")
	q.Set("fields[components]", "name")
	q.Set("fields[sites]", "name")
	return q
}
