package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/black301/quiz-system-client/internal/config"
	"github.com/black301/quiz-system-client/session"
)

// Client performs authenticated calls against the quiz backend. Every call
// attaches the current bearer token; a call rejected for an expired token
// triggers one refresh cycle and one retry, never more. If the session
// cannot be recovered it is torn down before the failure is surfaced.
type Client struct {
	baseURL      string
	refreshPath  string
	logoutPath   string
	store        session.Store
	httpClient   *http.Client
	logger       zerolog.Logger
	refreshGroup *singleflight.Group
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRefreshDeduplication collapses concurrent expiry-triggered refreshes
// into a single upstream call. Off by default: independent calls otherwise
// each run their own refresh cycle, which is the documented behaviour.
func WithRefreshDeduplication() Option {
	return func(c *Client) {
		c.refreshGroup = &singleflight.Group{}
	}
}

func New(cfg config.EndpointConfig, store session.Store, options ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("[api.New] config is required")
	}
	if store == nil {
		return nil, errors.New("[api.New] store is required")
	}

	client := &Client{
		baseURL:     cfg.GetBaseURL(),
		refreshPath: cfg.GetRefreshPath(),
		logoutPath:  cfg.GetLogoutPath(),
		store:       store,
		httpClient:  http.DefaultClient,
		logger:      zerolog.Nop(),
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

// RequestOptions describes the caller-controlled parts of a request. Body,
// if set, must already be JSON text. Caller headers are merged in but can
// never override Authorization; Content-Type may be replaced (uploads).
type RequestOptions struct {
	Method string
	Body   []byte
	Header http.Header
}

// Request performs one logical call and returns the parsed response body.
func (c *Client) Request(ctx context.Context, endpoint string, opts *RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, endpoint, opts, true)
}

// RequestInto performs one logical call and decodes the response into out.
func (c *Client) RequestInto(ctx context.Context, endpoint string, opts *RequestOptions, out any) error {
	raw, err := c.Request(ctx, endpoint, opts)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Message: GenericErrorMessage,
			Kind:    KindTransport,
			cause:   errors.Wrap(err, "[Client.RequestInto] decode body"),
		}
	}
	return nil
}

// errorEnvelope is the conventional error shape the backend returns. Shapes
// vary by endpoint, which is why expiry detection also sniffs the detail
// text instead of trusting any one field.
type errorEnvelope struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// tokenNotValidCode is the sentinel the backend's JWT middleware emits.
const tokenNotValidCode = "token_not_valid"

// isExpired classifies a failure as credential expiry. The three signals
// are OR-ed on purpose: the backend has no canonical error envelope.
func isExpired(status int, envelope errorEnvelope) bool {
	if status == http.StatusUnauthorized {
		return true
	}
	if strings.Contains(strings.ToLower(envelope.Detail), "token") {
		return true
	}
	return envelope.Code == tokenNotValidCode
}

// do is the whole state machine. allowRetry is the recursion guard: the
// retry attempt runs with it false, so at most one refresh cycle happens
// per logical call.
func (c *Client) do(ctx context.Context, endpoint string, opts *RequestOptions, allowRetry bool) (json.RawMessage, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	logger := c.logger.With().
		Str("request_id", uuid.New().String()).
		Str("method", method).
		Str("endpoint", endpoint).
		Logger()

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, &Error{
			Message: GenericErrorMessage,
			Kind:    KindTransport,
			cause:   errors.Wrap(err, "[Client.do] build request"),
		}
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range opts.Header {
		if http.CanonicalHeaderKey(key) == "Authorization" {
			continue
		}
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	// An absent token is not an error: the call goes out unauthenticated
	// and the backend gets to reject it.
	if token := c.store.Access(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{
			Message: GenericErrorMessage,
			Kind:    KindTransport,
			cause:   errors.Wrap(err, "[Client.do] execute"),
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Message: GenericErrorMessage,
			Kind:    KindTransport,
			Status:  resp.StatusCode,
			cause:   errors.Wrap(err, "[Client.do] read body"),
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if !json.Valid(raw) {
			return nil, &Error{
				Message: GenericErrorMessage,
				Kind:    KindTransport,
				Status:  resp.StatusCode,
				cause:   errors.New("[Client.do] response is not valid JSON"),
			}
		}
		logger.Debug().Int("status", resp.StatusCode).Msg("request succeeded")
		return json.RawMessage(raw), nil
	}

	// Failure bodies are not always the detail/code object: some endpoints
	// return arrays or bare strings. Decode best-effort and let the status
	// alone classify when the shape does not match.
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		logger.Debug().Int("status", resp.StatusCode).Msg("error body is not the detail/code shape")
		envelope = errorEnvelope{}
	}

	if isExpired(resp.StatusCode, envelope) && allowRetry {
		logger.Debug().Int("status", resp.StatusCode).Msg("access token rejected, refreshing")
		if err := c.refreshAccessToken(ctx); err != nil {
			logger.Warn().Err(err).Msg("refresh failed, tearing down session")
			if terr := c.Teardown(ctx); terr != nil {
				logger.Warn().Err(terr).Msg("session teardown failed")
			}
			return nil, &Error{
				Message: ExpiredSessionMessage,
				Kind:    KindSessionExpired,
				Status:  resp.StatusCode,
				cause:   err,
			}
		}
		return c.do(ctx, endpoint, opts, false)
	}

	message := envelope.Detail
	if message == "" {
		message = GenericErrorMessage
	}
	logger.Debug().Int("status", resp.StatusCode).Str("detail", envelope.Detail).Msg("request failed")
	return nil, &Error{Message: message, Kind: KindAPI, Status: resp.StatusCode}
}
