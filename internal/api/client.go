package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CredentialSource supplies the bearer token for outbound requests.
// An empty token means no session; nothing is attached.
type CredentialSource interface {
	Token() string
}

// UnauthorizedSink is notified when the backend rejects our
// credential. Invalidate reports whether this notification actually
// ended a session, so only one of a burst of 401s acts on it.
type UnauthorizedSink interface {
	Invalidate() bool
}

// Client is the HTTP boundary: every request goes through do, which
// attaches the auth header, tags the request, and normalizes failures
// into *Error before callers see them.
type Client struct {
	base         string
	http         *http.Client
	log          *zap.Logger
	creds        CredentialSource
	unauthorized UnauthorizedSink
}

// New builds a client rooted at base (e.g. http://localhost:8080/api).
func New(base string, creds CredentialSource, unauthorized UnauthorizedSink, log *zap.Logger) *Client {
	return &Client{
		base:         strings.TrimRight(base, "/"),
		http:         &http.Client{Timeout: 30 * time.Second},
		log:          log,
		creds:        creds,
		unauthorized: unauthorized,
	}
}

// wireError is the shape of backend error bodies.
type wireError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	requestID := uuid.NewString()

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return clientError(err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return clientError(err)
	}

	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	// Login and signup go out bare; everything else carries the
	// session's bearer token when one exists.
	if !strings.HasPrefix(path, "/auth/") {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := clientError(err)
		c.logError(method, path, requestID, apiErr)
		return apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var wire wireError
		_ = json.NewDecoder(resp.Body).Decode(&wire)
		apiErr := normalize(resp.StatusCode, wire.Message)

		if resp.StatusCode == http.StatusUnauthorized {
			if c.unauthorized.Invalidate() {
				c.log.Warn("session invalidated by backend",
					zap.String("method", method),
					zap.String("path", path),
					zap.String("requestId", requestID))
			}
		}

		c.logError(method, path, requestID, apiErr)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		apiErr := clientError(err)
		c.logError(method, path, requestID, apiErr)
		return apiErr
	}
	return nil
}

func (c *Client) logError(method, path, requestID string, apiErr *Error) {
	c.log.Error("request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("requestId", requestID),
		zap.Int("status", apiErr.Status),
		zap.String("kind", string(apiErr.Kind)),
		zap.String("message", apiErr.Message))
}
