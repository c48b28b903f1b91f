package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Trace func(method, url string)

type Client struct {
	URL string

	client  *http.Client
	headers map[string]string

	trace Trace
}

type Option func(*Client)

func New(baseURL string, options ...Option) (*Client, error) {
	url, err := url.Parse(baseURL)

	if err != nil {
		return nil, err
	}

	if !url.IsAbs() || url.Host == "" {
		return nil, fmt.Errorf("invalid base URL")
	}

	c := &Client{
		URL: strings.TrimRight(url.String(), "/"),

		client:  http.DefaultClient,
		headers: map[string]string{},
	}

	for _, o := range options {
		o(c)
	}

	return c, nil
}

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client = &http.Client{
			Transport: c.client.Transport,
			Timeout:   timeout,
		}
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

func WithTrace(trace Trace) Option {
	return func(c *Client) {
		c.trace = trace
	}
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected status: " + e.Status
}

// Resolve joins an already escaped path onto the base URL.
func (c *Client) Resolve(path string) string {
	return c.URL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) Get(ctx context.Context, path, accept string) ([]byte, error) {
	url := c.Resolve(path)

	if c.trace != nil {
		c.trace(http.MethodGet, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	return result, nil
}
