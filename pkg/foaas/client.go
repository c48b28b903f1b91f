package foaas

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"math/rand/v2"
	"net/http"
	"slices"
	"time"

	"github.com/adrianliechti/foaas-cli/pkg/rest"

	"github.com/sirupsen/logrus"
)

const (
	DefaultURL = "https://www.foaas.com"

	contentType = "application/json"
)

// Client talks to a FOAAS compatible API. It holds no mutable state and is safe for concurrent use.
type Client struct {
	rest *rest.Client

	logger logrus.FieldLogger
	random func(n int) int

	options []rest.Option
}

type Option func(*Client)

func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		logger: discard,
		random: rand.IntN,

		options: []rest.Option{
			rest.WithHeader("User-Agent", "foaas-cli"),
		},
	}

	for _, o := range options {
		o(c)
	}

	client, err := rest.New(baseURL, c.options...)

	if err != nil {
		return nil, err
	}

	c.rest = client
	c.options = nil

	return c, nil
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.options = append(c.options, rest.WithClient(client))
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.options = append(c.options, rest.WithTimeout(timeout))
		}
	}
}

func WithTrace(trace func(method, url string)) Option {
	return func(c *Client) {
		c.options = append(c.options, rest.WithTrace(trace))
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRandom replaces the source used to pick random operations; random(n) must return a value in [0, n).
func WithRandom(random func(n int) int) Option {
	return func(c *Client) {
		c.random = random
	}
}

func (c *Client) URL() string {
	return c.rest.URL
}

// Operations fetches the catalog. Every call issues a new request.
func (c *Client) Operations(ctx context.Context) (Catalog, error) {
	url := c.rest.Resolve("operations")

	c.logger.WithField("url", url).Debug("fetching operations")

	data, err := c.rest.Get(ctx, "operations", contentType)

	if err != nil {
		return nil, c.networkError(url, err)
	}

	catalog, err := decodeCatalog(data)

	if err != nil {
		return nil, c.decodeError(url, err)
	}

	c.logger.WithField("count", len(catalog)).Debug("fetched operations")

	return catalog, nil
}

func (c *Client) Invoke(ctx context.Context, o *Operation, values []string) (*Response, error) {
	if o == nil {
		return nil, errors.New("no operation given")
	}

	path, err := o.Expand(values)

	if err != nil {
		var terr *TemplateError

		if errors.As(err, &terr) {
			c.logger.WithFields(logrus.Fields{
				"operation": o.Name,
				"template":  o.URL,
				"missing":   terr.Missing,
				"unknown":   terr.Unknown,
			}).Error("catalog template mismatch")
		}

		return nil, err
	}

	url := c.rest.Resolve(path)

	c.logger.WithFields(logrus.Fields{
		"operation": o.Name,
		"url":       url,
	}).Debug("invoking operation")

	data, err := c.rest.Get(ctx, path, contentType)

	if err != nil {
		return nil, c.networkError(url, err)
	}

	response, err := decodeResponse(data)

	if err != nil {
		return nil, c.decodeError(url, err)
	}

	return response, nil
}

// Lookup fetches the catalog and finds the operation for key (see Catalog.Find).
func (c *Client) Lookup(ctx context.Context, key string) (*Operation, error) {
	catalog, err := c.Operations(ctx)

	if err != nil {
		return nil, err
	}

	o, ok := catalog.Find(key)

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoMatchingOperation, key)
	}

	return o, nil
}

// Call looks up key and invokes the operation.
func (c *Client) Call(ctx context.Context, key string, values ...string) (*Response, error) {
	o, err := c.Lookup(ctx, key)

	if err != nil {
		return nil, err
	}

	return c.Invoke(ctx, o, values)
}

// Random invokes a randomly chosen operation taking exactly {name, from},
// or exactly {from} when name is empty.
func (c *Client) Random(ctx context.Context, name, from string) (*Response, error) {
	o, values, err := c.Pick(ctx, name, from)

	if err != nil {
		return nil, err
	}

	return c.Invoke(ctx, o, values)
}

// Pick selects the operation Random would invoke and orders the values along its fields.
func (c *Client) Pick(ctx context.Context, name, from string) (*Operation, []string, error) {
	catalog, err := c.Operations(ctx)

	if err != nil {
		return nil, nil, err
	}

	values := map[string]string{
		"from": from,
	}

	if name != "" {
		values["name"] = name
	}

	fields := slices.Sorted(maps.Keys(values))
	candidates := catalog.Match(fields...)

	if len(candidates) == 0 {
		return nil, nil, fmt.Errorf("%w: fields %v", ErrNoMatchingOperation, fields)
	}

	o := candidates[c.random(len(candidates))]

	var args []string

	for _, f := range o.Fields {
		args = append(args, values[f.Field])
	}

	c.logger.WithField("operation", o.Name).Debug("picked random operation")

	return o, args, nil
}

func (c *Client) networkError(url string, err error) error {
	result := &NetworkError{
		URL: url,
		Err: err,
	}

	var serr *rest.StatusError

	if errors.As(err, &serr) {
		result.StatusCode = serr.StatusCode
	}

	c.logger.WithFields(logrus.Fields{
		"url":    url,
		"status": result.StatusCode,
	}).WithError(err).Warn("request failed")

	return result
}

func (c *Client) decodeError(url string, err error) error {
	c.logger.WithField("url", url).WithError(err).Warn("invalid response")

	return &DecodeError{
		URL: url,
		Err: err,
	}
}
