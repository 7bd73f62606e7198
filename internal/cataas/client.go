package cataas

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// saysPath is the upstream path template. The encoded fortune text is
// appended as the final path segment.
const saysPath = "/cat/cute/says/"

const upperhex = "0123456789ABCDEF"

// Quote percent-encodes s so it is safe to embed in a URL path.
// Every byte outside the unreserved set (letters, digits, "-", "_",
// ".", "~") is escaped, except "/" which is left intact, matching the
// reference encoder. Newlines and spaces therefore become %0A and %20.
//
// The output round-trips: url.PathUnescape(Quote(s)) == s for any s
// without a literal "/".
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// isUnreserved reports whether c never needs percent-encoding per
// RFC 3986 section 2.3, plus "_" which the reference encoder also
// leaves raw.
func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}

// Response is the opaque upstream reply carried back to the caller.
// The gateway forwards all three fields verbatim; a non-2xx status is
// data, not an error.
type Response struct {
	// StatusCode is the upstream HTTP status code.
	StatusCode int

	// ContentType is the upstream Content-Type header, possibly empty.
	ContentType string

	// Body is the full upstream response body.
	Body []byte
}

// Client issues image requests to the cat image service.
//
// All fields are fixed at construction time, so a single Client is safe
// for concurrent use across requests.
type Client struct {
	// baseURL is the upstream base, e.g. "https://cataas.com",
	// without a trailing slash.
	baseURL string

	// fontSize is the fontSize query parameter sent with every request.
	fontSize int

	// httpClient performs the outbound calls. Its defaults (including
	// the absence of a timeout) are deliberately left alone.
	httpClient *http.Client
}

// NewClient creates a Client for the given upstream base URL and font
// size. A nil httpClient falls back to http.DefaultClient, preserving
// the default (timeout-free) outbound behavior of the reference.
func NewClient(baseURL string, fontSize int, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		fontSize:   fontSize,
		httpClient: httpClient,
	}
}

// SaysURL builds the full upstream URL for the given (already wrapped)
// fortune text. Empty text produces a URL whose path ends in a trailing
// slash with no segment content; the request is still issued.
func (c *Client) SaysURL(text string) string {
	params := url.Values{
		"html":     {"true"},
		"fontSize": {strconv.Itoa(c.fontSize)},
	}
	return c.baseURL + saysPath + Quote(text) + "?" + params.Encode()
}

// Says requests a cat image saying the given text and returns the
// upstream reply as-is. Only transport-level failures (connection
// refused, DNS, cancelled context) produce an error; any HTTP status
// the upstream returns is passed through in the Response.
func (c *Client) Says(ctx context.Context, text string) (*Response, error) {
	reqURL := c.SaysURL(text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request for %s: %w", reqURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request to %s failed: %w", reqURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response body: %w", err)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
