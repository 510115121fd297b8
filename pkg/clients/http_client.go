package clients

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "rebox/1.0"
)

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

// HTTPClientAdapter reads whole response bodies; callers only see status,
// body and headers.
type HTTPClientAdapter struct {
	client    *http.Client
	userAgent string
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.client.Do(req)
}

func (h *HTTPClientAdapter) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	return h.roundTrip(http.MethodGet, url, headers, nil)
}

func (h *HTTPClientAdapter) Post(url string, headers http.Header, body []byte) (int, []byte, error) {
	status, respBody, _, err := h.roundTrip(http.MethodPost, url, headers, body)
	return status, respBody, err
}

func (h *HTTPClientAdapter) roundTrip(method, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	reqBody := io.Reader(http.NoBody)
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return
	}
	if headers != nil {
		req.Header = headers.Clone()
	}

	resp, err := h.Do(req)
	if err != nil {
		return
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	if respBody, err = io.ReadAll(resp.Body); err != nil {
		return
	}
	return resp.StatusCode, respBody, resp.Header, nil
}

type Option func(*HTTPClientAdapter)

func WithTimeout(d time.Duration) Option {
	return func(a *HTTPClientAdapter) { a.client.Timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(a *HTTPClientAdapter) { a.userAgent = ua }
}

// HTTPClient is the swappable front used by the poller and the notifier.
type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	adapter := &HTTPClientAdapter{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return &HTTPClient{client: adapter}
}

func (h *HTTPClient) Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	return h.client.Get(url, headers)
}

func (h *HTTPClient) Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error) {
	return h.client.Post(url, headers, body)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
