package fitapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/xqfit/routines/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// DefaultTimeout bounds every interactive call; a timeout surfaces
	// as a network-kind error, same as any other transport failure.
	DefaultTimeout = 10 * time.Second

	oneHour                 = 60 * 60
	muscleGroupsCacheExpire = oneHour * 1 // reference data, changes ~never
)

const (
	serviceRead  = "read"
	serviceWrite = "write"
)

// Client is the typed gateway to the two fitness backend services. The
// read service serves GETs only; all mutations go to the write service.
type Client struct {
	readBaseURL  string // e.g. http://localhost:8080/xq-fitness-read-service/api/v1
	writeBaseURL string
	httpClient   *http.Client
	cache        *freecache.Cache
	metrics      *metrics.Manager
}

func NewClient(readBaseURL, writeBaseURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	megabyte := 1024 * 1024
	return &Client{
		readBaseURL:  readBaseURL,
		writeBaseURL: writeBaseURL,
		httpClient:   httpClient,
		cache:        freecache.NewCache(1 * megabyte),
		metrics:      metricsManager,
	}
}

// NewDefaultHTTPClient returns the http client used for all calls when the
// caller has no special needs: fixed timeout, traced transport.
func NewDefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// do issues one request and decodes the response into out (when non-nil).
// Every failure comes back as *APIError; server-supplied messages are
// preserved verbatim for display.
func (c *Client) do(ctx context.Context, service, operation, method, url string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", operation, err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("new %s request: %w", operation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Tracef("fitapi: %s %s", method, url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countRequest(service, operation, "network_error")
		return &APIError{
			Kind:    KindNetwork,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.countRequest(service, operation, "network_error")
		return &APIError{
			Kind:    KindNetwork,
			Message: fmt.Sprintf("read response: %s", err),
		}
	}

	c.countRequest(service, operation, strconv.Itoa(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBytes)
	}

	if out != nil && len(respBytes) > 0 {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("unmarshal %s response: %w", operation, err)
		}
	}

	return nil
}

func newAPIError(statusCode int, respBytes []byte) *APIError {
	message := http.StatusText(statusCode)
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBytes, &errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
	}

	kind := KindServer
	switch statusCode {
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindValidation
	}

	return &APIError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
	}
}

func (c *Client) countRequest(service, operation, status string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterAPIRequests.
		WithLabelValues(service, operation, status).
		Inc()
}
