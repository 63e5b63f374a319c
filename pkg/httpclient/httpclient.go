package httpclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/valyala/fasthttp"
)

type Config struct {
	// Debug logs every request.
	Debug bool

	// Headers are sent with every request.
	Headers map[string]string

	// Timeout applies when the request context has no deadline. Zero means no timeout.
	Timeout time.Duration
}

type Client struct {
	baseURL *url.URL
	Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	if cf.Headers == nil {
		cf.Headers = make(map[string]string)
	}
	return &Client{
		baseURL: parsed,
		Config:  cf,
	}, nil
}

type RequestOptions struct {
	path   string
	method string
	Body   []byte
	Query  url.Values
	Header map[string]string
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

// UnmarshalBody decodes a JSON response body into out.
func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %v", r.URL)
	}
	contentType := strings.ToLower(string(r.Header.ContentType()))
	if !strings.HasPrefix(contentType, "application/json") {
		return errors.Wrapf(errs.Unsupported, "content type %q from %s", contentType, r.URL)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "can't unmarshal json body from %s", r.URL)
	}
	return nil
}

// BaseURL returns a copy of the client's base URL.
func (h *Client) BaseURL() *url.URL {
	u := *h.baseURL
	return &u
}

func (h *Client) Do(ctx context.Context, method, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = method
	return h.request(ctx, reqOptions)
}

func (h *Client) Get(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	return h.Do(ctx, fasthttp.MethodGet, path, reqOptions)
}

func (h *Client) Post(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	return h.Do(ctx, fasthttp.MethodPost, path, reqOptions)
}

func (h *Client) request(ctx context.Context, reqOptions RequestOptions) (*HttpResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseResponse(resp)
		fasthttp.ReleaseRequest(req)
	}()

	req.Header.SetMethod(reqOptions.method)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range reqOptions.Header {
		req.Header.Set(k, v)
	}

	target := h.BaseURL()
	target.Path = path.Join(target.Path, reqOptions.path)
	target.RawQuery = reqOptions.Query.Encode()
	uri := target.String()
	req.SetRequestURI(uri)
	if reqOptions.Body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(reqOptions.Body)
	}

	start := time.Now()
	var err error
	switch deadline, ok := ctx.Deadline(); {
	case ok:
		err = fasthttp.DoDeadline(req, resp, deadline)
	case h.Timeout > 0:
		err = fasthttp.DoTimeout(req, resp, h.Timeout)
	default:
		err = fasthttp.Do(req, resp)
	}
	if h.Debug {
		logger.DebugContext(ctx, "Finished http request",
			slog.String("package", "httpclient"),
			slog.String("method", reqOptions.method),
			slog.String("url", uri),
			slog.Duration("latency", time.Since(start)),
			slog.Int("status_code", resp.StatusCode()),
		)
	}
	if err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, errors.Wrapf(errs.Timeout, "url: %s", uri)
		}
		return nil, errors.Wrapf(err, "url: %s", uri)
	}

	out := HttpResponse{URL: uri}
	resp.CopyTo(&out.Response)
	return &out, nil
}
