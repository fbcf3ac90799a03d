package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/services/auth"
)

// Header values expected by the Realms API from a Bedrock client
const (
	ClientVersion  = "1.18.31"
	UserAgent      = "MCPE/UWP"
	AcceptEncoding = "gzip, deflate, br"
	AcceptLanguage = "en-US,en;q=0.5"
)

// IdentityProvider resolves the identity a request is authorized with
type IdentityProvider interface {
	Identity(ctx context.Context, party auth.Party) (model.Identity, error)
}

// Manager performs authorized requests against the Realms and Xbox APIs.
// Every call is a single round trip: no retries, no queueing, and no
// deadline other than the caller's context.
type Manager struct {
	identities IdentityProvider
	httpClient *http.Client
	logger     *slog.Logger
}

// NewManager creates a new request Manager. A nil httpClient uses a client
// without a timeout.
func NewManager(identities IdentityProvider, httpClient *http.Client, logger *slog.Logger) *Manager {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Manager{
		identities: identities,
		httpClient: httpClient,
		logger:     logger,
	}
}

type options struct {
	query    url.Values
	body     any
	identity *model.Identity
	party    auth.Party
}

// Option customizes a single request
type Option func(*options)

// WithQuery adds query parameters to the endpoint
func WithQuery(query url.Values) Option {
	return func(o *options) {
		o.query = query
	}
}

// WithBody sends v as the JSON request body
func WithBody(v any) Option {
	return func(o *options) {
		o.body = v
	}
}

// WithIdentity overrides the identity for this request
func WithIdentity(identity model.Identity) Option {
	return func(o *options) {
		o.identity = &identity
	}
}

// WithParty selects which of the provider's identities authorizes the request
func WithParty(party auth.Party) Option {
	return func(o *options) {
		o.party = party
	}
}

// Do performs a request and decodes a 2xx JSON response into result.
// Any failure is returned as *Error.
func (m *Manager) Do(ctx context.Context, method, endpoint string, result any, opts ...Option) error {
	o := options{party: auth.PartyRealms}
	for _, opt := range opts {
		opt(&o)
	}

	fail := func(status int, body []byte, err error) error {
		return &Error{Method: method, URL: endpoint, StatusCode: status, Body: body, Err: err}
	}

	identity, err := m.resolveIdentity(ctx, o)
	if err != nil {
		return fail(0, nil, err)
	}

	target, err := withQuery(endpoint, o.query)
	if err != nil {
		return fail(0, nil, err)
	}

	var bodyReader io.Reader
	if o.body != nil {
		data, err := json.Marshal(o.body)
		if err != nil {
			return fail(0, nil, fmt.Errorf("failed to marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fail(0, nil, fmt.Errorf("failed to create request: %w", err))
	}

	setHeaders(req.Header, identity)
	if o.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Debug("request failed",
			slog.String("method", method),
			slog.String("url", target),
			slog.String("error", err.Error()),
		)
		return fail(0, nil, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := readBody(resp)

	m.logger.Debug("request completed",
		slog.String("method", method),
		slog.String("url", target),
		slog.Int("status", resp.StatusCode),
		slog.Int("size", len(respBody)),
		slog.Duration("duration", time.Since(start)),
	)

	if err != nil {
		return fail(resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, respBody, nil)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fail(resp.StatusCode, respBody, fmt.Errorf("failed to parse response: %w", err))
		}
	}

	return nil
}

// Get performs a GET request
func (m *Manager) Get(ctx context.Context, endpoint string, result any, opts ...Option) error {
	return m.Do(ctx, http.MethodGet, endpoint, result, opts...)
}

// Put performs a PUT request without a body
func (m *Manager) Put(ctx context.Context, endpoint string, result any, opts ...Option) error {
	return m.Do(ctx, http.MethodPut, endpoint, result, opts...)
}

// Post performs a POST request with an optional JSON body
func (m *Manager) Post(ctx context.Context, endpoint string, body, result any, opts ...Option) error {
	if body != nil {
		opts = append(opts, WithBody(body))
	}
	return m.Do(ctx, http.MethodPost, endpoint, result, opts...)
}

// Delete performs a DELETE request
func (m *Manager) Delete(ctx context.Context, endpoint string, opts ...Option) error {
	return m.Do(ctx, http.MethodDelete, endpoint, nil, opts...)
}

// Callback receives the outcome of Send: the raw JSON body and false on
// success, or the *Error and true on failure
type Callback func(value any, isError bool)

// Send performs a request and reports its outcome to cb before returning
func (m *Manager) Send(ctx context.Context, method, endpoint string, cb Callback, opts ...Option) {
	var raw json.RawMessage
	if err := m.Do(ctx, method, endpoint, &raw, opts...); err != nil {
		cb(err, true)
		return
	}
	cb(raw, false)
}

func (m *Manager) resolveIdentity(ctx context.Context, o options) (model.Identity, error) {
	if o.identity != nil {
		return *o.identity, nil
	}
	return m.identities.Identity(ctx, o.party)
}

func setHeaders(h http.Header, identity model.Identity) {
	h.Set("Accept", "*/*")
	h.Set("Accept-Encoding", AcceptEncoding)
	h.Set("Accept-Language", AcceptLanguage)
	h.Set("client-version", ClientVersion)
	h.Set("Authorization", auth.Header(identity))
	h.Set("User-Agent", UserAgent)
}

func withQuery(endpoint string, query url.Values) (string, error) {
	if len(query) == 0 {
		return endpoint, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// readBody reads the response, undoing the content encodings we advertise.
// Setting Accept-Encoding by hand disables net/http's transparent gzip.
func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader
	switch enc := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))); enc {
	case "", "identity":
		r = resp.Body
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer func() { _ = zr.Close() }()
		r = zr
	case "deflate":
		zr, err := zlib.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer func() { _ = zr.Close() }()
		r = zr
	case "br":
		r = brotli.NewReader(resp.Body)
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", enc)
	}
	return io.ReadAll(r)
}
