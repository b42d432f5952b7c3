package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FallbackMessage is shown when the server fails without a usable message.
const FallbackMessage = "Something went wrong. Please try again."

// APIError is the normalized failure for every request: transport errors,
// timeouts and 4xx/5xx all surface as one of these. StatusCode is 0 when the
// request never produced a response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is an APIError with HTTP 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// TokenSource supplies the bearer credential for outgoing requests. An empty
// string leaves the request unauthenticated.
type TokenSource func() string

// File is a binary part of a multipart submission.
type File struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

// Client wraps outbound portal calls with a base URL, bearer attachment and
// error normalization. There is no automatic retry.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            zerolog.Logger
}

type Option func(*Client)

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUnauthorizedHook registers a callback fired whenever any request comes
// back 401, so the session store can invalidate itself.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	reader, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, reader, "application/json", out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	reader, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, reader, "application/json", out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// PostMultipart submits text fields plus attached files as multipart
// form-data. Files all share the field name they carry, so repeated "images"
// parts land as an array server-side.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []File, out any) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return &APIError{Message: fmt.Sprintf("failed to write form field %s: %v", key, err)}
		}
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.FieldName, f.FileName))
		if f.ContentType != "" {
			header.Set("Content-Type", f.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("failed to write file part %s: %v", f.FileName, err)}
		}
		if _, err := part.Write(f.Data); err != nil {
			return &APIError{Message: fmt.Sprintf("failed to write file part %s: %v", f.FileName, err)}
		}
	}
	if err := writer.Close(); err != nil {
		return &APIError{Message: fmt.Sprintf("failed to close multipart writer: %v", err)}
	}

	return c.do(ctx, http.MethodPost, path, body, writer.FormDataContentType(), out)
}

func jsonBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("failed to marshal request body: %v", err)}
	}
	return bytes.NewReader(data), nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("api transport failure")
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
		c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api error response")
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
		}
	}
	return nil
}

// serverMessage extracts the backend's human-readable message from an error
// body, falling back to a generic string when it has none.
func serverMessage(data []byte) string {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err == nil {
		if msg, ok := body["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := body["error"].(string); ok && msg != "" {
			return msg
		}
	}
	return FallbackMessage
}
