package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxErrorBody = 64 << 10

// Error is a failed call to an upstream service, decoded once here so callers
// never inspect response bodies themselves. StatusCode is 0 when the request
// never got a response.
type Error struct {
	Service    string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s: request failed: %v", e.Service, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: status %d", e.Service, e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the message sent by the upstream service, if any.
func UserMessage(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}

// Client posts JSON to one upstream REST service.
type Client struct {
	service string
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(service, baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.Named(service),
	}
}

// PostJSON sends in as the request body and decodes a 2xx response into out
// (out may be nil). Every failure is returned as *Error.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Service: c.service, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &Error{Service: c.service, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("path", path), zap.Error(err))
		return &Error{Service: c.service, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return decodeError(c.service, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Service: c.service, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

type errorEnvelope struct {
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Error   json.RawMessage `json:"error"`
	Data    *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"data"`
}

// decodeError picks the message with precedence data.message, message,
// error (when it is a string).
func decodeError(service string, status int, raw []byte) *Error {
	e := &Error{Service: service, StatusCode: status}

	var env errorEnvelope
	if len(raw) == 0 || json.Unmarshal(raw, &env) != nil {
		return e
	}

	var errString string
	if len(env.Error) > 0 {
		_ = json.Unmarshal(env.Error, &errString)
	}

	switch {
	case env.Data != nil && strings.TrimSpace(env.Data.Message) != "":
		e.Message = strings.TrimSpace(env.Data.Message)
	case strings.TrimSpace(env.Message) != "":
		e.Message = strings.TrimSpace(env.Message)
	default:
		e.Message = strings.TrimSpace(errString)
	}

	e.Code = env.Code
	if e.Code == "" && env.Data != nil {
		e.Code = env.Data.Code
	}
	return e
}
