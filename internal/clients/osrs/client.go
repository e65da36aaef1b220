// Package osrs fetches game data over HTTP: community table dumps, the live
// price feed and the hiscores lite endpoint.
package osrs

//go:generate mockgen -destination=mock/mock_client.go -package=osrsmock github.com/osrsdps/dps-console/internal/clients/osrs Client

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/osrsdps/dps-console/internal/errors"
)

const (
	defaultUserAgent = "dps-console/1.0 (+https://github.com/osrsdps/dps-console)"
	hiscoresPath     = "/index_lite.ws"
)

// Client defines the HTTP lookups the console makes
type Client interface {
	// FetchTable downloads a table payload from an absolute URL
	FetchTable(ctx context.Context, tableURL string) ([]byte, error)

	// FetchHiscores returns the raw lite hiscores text for a player.
	// Returns errors.NotFound when the player has no hiscores entry.
	FetchHiscores(ctx context.Context, username string) (string, error)
}

// Config configures the HTTP client
type Config struct {
	HiscoresBaseURL string
	Timeout         time.Duration
	UserAgent       string
}

// Validate validates the Config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("HiscoresBaseURL", c.HiscoresBaseURL, vb)
	errors.ValidatePositive("Timeout", int64(c.Timeout), vb)
	return vb.Build()
}

type client struct {
	http            *fasthttp.Client
	hiscoresBaseURL string
	timeout         time.Duration
	userAgent       string
}

// New creates a fasthttp backed Client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	return &client{
		http: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         cfg.Timeout,
			WriteTimeout:        cfg.Timeout,
			MaxIdleConnDuration: time.Minute,
			// table dumps are large
			MaxResponseBodySize: 256 << 20,
		},
		hiscoresBaseURL: strings.TrimRight(cfg.HiscoresBaseURL, "/"),
		timeout:         cfg.Timeout,
		userAgent:       ua,
	}, nil
}

func (c *client) FetchTable(ctx context.Context, tableURL string) ([]byte, error) {
	if tableURL == "" {
		return nil, errors.InvalidArgument("table url cannot be empty")
	}
	body, err := c.doRequest(ctx, tableURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch table %s", tableURL)
	}
	return body, nil
}

func (c *client) FetchHiscores(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.InvalidArgument("username cannot be empty")
	}

	reqURL := c.hiscoresBaseURL + hiscoresPath + "?player=" + url.QueryEscape(username)
	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.NotFoundf("no hiscores for %s", username).WithMeta("username", username)
		}
		return "", errors.Wrapf(err, "failed to fetch hiscores for %s", username)
	}
	return string(body), nil
}

func (c *client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "request not sent")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(reqURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(c.userAgent)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		if err == fasthttp.ErrTimeout {
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request timed out")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "request failed")
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusOK:
	case status == fasthttp.StatusNotFound:
		return nil, errors.NotFoundf("%s returned 404", reqURL)
	default:
		return nil, errors.Unavailablef("%s returned %d", reqURL, status)
	}

	// resp is released on return
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
