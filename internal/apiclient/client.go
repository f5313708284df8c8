// internal/apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

const (
	// UserAgent identifies this client in server logs.
	UserAgent = "jardin-client/1.0"

	headerRequestID  = "X-Request-ID"
	maxResponseBytes = 32 << 20
)

var errEmptyBody = errors.New("empty response body")

// TokenSource supplies the bearer token for outgoing requests ("" = anonymous).
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client talks to the plant-care backend over HTTP.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	maxRetries int
	retryDelay time.Duration
	logHTTP    bool
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests point it at httptest servers).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryDelay sets the base wait between connection retries (default 500ms).
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// New builds a Client from the api section of the config.
// tokens may be nil when no session is available.
func New(cfg configs.APIConfig, tokens TokenSource, opts ...Option) *Client {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout, KeepAlive: 30 * time.Second}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ResponseHeaderTimeout: cfg.ReadTimeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.ConnectTimeout + cfg.WriteTimeout + cfg.ReadTimeout,
		},
		tokens:     tokens,
		maxRetries: cfg.MaxRetries,
		retryDelay: 500 * time.Millisecond,
		logHTTP:    cfg.LogHTTP,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// ResolveURL turns a relative resource path ("uploads/x.jpg") into an absolute URL.
// Absolute URLs and "" are returned unchanged.
func (c *Client) ResolveURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return c.baseURL + "/" + strings.TrimLeft(ref, "/")
}

// ====================================================================================
// Request plumbing
// ====================================================================================

type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	return c.do(ctx, &request{op: op, method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) sendJSON(ctx context.Context, op, method, path string, query url.Values, in, out interface{}) error {
	r := &request{op: op, method: method, path: path, query: query}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindInvalid, Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		r.body = body
		r.contentType = "application/json"
	}
	return c.do(ctx, r, out)
}

func (c *Client) sendForm(ctx context.Context, op, path string, form url.Values, out interface{}) error {
	return c.do(ctx, &request{
		op:          op,
		method:      http.MethodPost,
		path:        path,
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, out)
}

// do executes r, retrying connection failures, and decodes a 2xx JSON body into out
// (out == nil discards the body).
func (c *Client) do(ctx context.Context, r *request, out interface{}) error {
	var resp *http.Response
	requestID := uuid.NewString()

	err := WithRetry(ctx, c.maxRetries, c.retryDelay, func() error {
		httpReq, err := c.newHTTPRequest(ctx, r, requestID)
		if err != nil {
			return &Error{Kind: KindInvalid, Op: r.op, Err: err}
		}

		start := time.Now()
		res, err := c.httpClient.Do(httpReq)
		if err != nil {
			apiErr := classify(r.op, err)
			zlog.Warn().Err(err).
				Str("request_id", requestID).
				Str("method", r.method).
				Str("path", r.path).
				Str("kind", apiErr.Kind.String()).
				Dur("latency", time.Since(start)).
				Msg("API: request failed")
			return apiErr
		}

		if c.logHTTP {
			zlog.Debug().
				Str("request_id", requestID).
				Str("method", r.method).
				Str("path", r.path).
				Int("status", res.StatusCode).
				Dur("latency", time.Since(start)).
				Msg("API: request completed")
		}
		resp = res
		return nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return classify(r.op, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return httpError(r.op, resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return &Error{Kind: KindDecode, Op: r.op, Status: resp.StatusCode, Err: errEmptyBody}
	}
	if err := json.Unmarshal(body, out); err != nil {
		zlog.Warn().Err(err).Str("path", r.path).Int("status", resp.StatusCode).Msg("API: cannot decode response body")
		return &Error{Kind: KindDecode, Op: r.op, Status: resp.StatusCode, Err: err}
	}
	return nil
}

func (c *Client) newHTTPRequest(ctx context.Context, r *request, requestID string) (*http.Request, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set(headerRequestID, requestID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// ====================================================================================
// Multipart
// ====================================================================================

// multipartForm collects text fields and at most one image file.
type multipartForm struct {
	fields    [][2]string
	imagePath string
}

func (f *multipartForm) field(name, value string) {
	f.fields = append(f.fields, [2]string{name, value})
}

func (f *multipartForm) optionalField(name string, value *string) {
	if value != nil && strings.TrimSpace(*value) != "" {
		f.field(name, *value)
	}
}

// encode checks the image locally (size, type) and builds the body. The image is read
// into memory so the body can be replayed on a connection retry.
func (f *multipartForm) encode(op string) ([]byte, string, error) {
	img, err := utils.CheckImageFile(f.imagePath)
	if err != nil {
		return nil, "", &Error{Kind: KindInvalid, Op: op, Err: err}
	}
	data, err := os.ReadFile(img.Path)
	if err != nil {
		return nil, "", &Error{Kind: KindInvalid, Op: op, Err: err}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", &Error{Kind: KindInvalid, Op: op, Err: err}
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(img.Path)))
	h.Set("Content-Type", img.MIMEType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", &Error{Kind: KindInvalid, Op: op, Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", &Error{Kind: KindInvalid, Op: op, Err: err}
	}
	if err := w.Close(); err != nil {
		return nil, "", &Error{Kind: KindInvalid, Op: op, Err: err}
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func (c *Client) sendMultipart(ctx context.Context, op, path string, form *multipartForm, out interface{}) error {
	body, contentType, err := form.encode(op)
	if err != nil {
		return err
	}
	return c.do(ctx, &request{
		op:          op,
		method:      http.MethodPost,
		path:        path,
		body:        body,
		contentType: contentType,
	}, out)
}

func itoa(i int) string { return strconv.Itoa(i) }

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {itoa(limit)}}
}

func userQuery(userID int) url.Values {
	return url.Values{"user_id": {itoa(userID)}}
}
