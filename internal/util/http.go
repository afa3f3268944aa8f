package util

import (
	"bufio"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
)

const (
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	defaultAcceptLanguage = "zh-CN,zh;q=0.9,en;q=0.6"
)

type debugLogger interface {
	Debugf(string, ...any)
}

type HTTPClientOptions struct {
	Timeout          time.Duration
	UserAgent        string
	Referer          string
	Cookie           string
	CookieFile       string
	CloudflareBypass bool
	Transport        http.RoundTripper
	DebugLogger      debugLogger
}

// NewHTTPClient builds the client shared by the site source and the image
// downloader. Requests get the configured User-Agent and, unless the caller
// set them already, a Referer, a Cookie header and an Accept-Language.
func NewHTTPClient(opts HTTPClientOptions) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	cookie, err := joinCookies(opts.Cookie, opts.CookieFile)
	if err != nil {
		return nil, err
	}

	base := opts.Transport
	if base == nil {
		base = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxConnsPerHost:     100,
			MaxIdleConnsPerHost: 100,
			ForceAttemptHTTP2:   true,
		}
	}
	if opts.CloudflareBypass {
		base = cloudflarebp.AddCloudFlareByPass(base)
	}

	rt := &headerTransport{
		base:  base,
		force: http.Header{},
		fill:  http.Header{"Accept-Language": {defaultAcceptLanguage}},
		log:   opts.DebugLogger,
	}
	if opts.UserAgent != "" {
		rt.force.Set("User-Agent", opts.UserAgent)
	}
	if opts.Referer != "" {
		rt.fill.Set("Referer", opts.Referer)
	}
	if cookie != "" {
		rt.fill.Set("Cookie", cookie)
	}

	if opts.DebugLogger != nil {
		opts.DebugLogger.Debugf("HTTP client ready (timeout=%s, ua=%q, cookieFile=%q, cloudflare=%t)\n",
			opts.Timeout, opts.UserAgent, opts.CookieFile, opts.CloudflareBypass)
	}

	return &http.Client{Timeout: opts.Timeout, Transport: rt, Jar: jar}, nil
}

// headerTransport always sets force headers and sets fill headers only
// when the request has none.
type headerTransport struct {
	base  http.RoundTripper
	force http.Header
	fill  http.Header
	log   debugLogger
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	for k, v := range t.force {
		req.Header[k] = v
	}
	for k, v := range t.fill {
		if req.Header.Get(k) == "" {
			req.Header[k] = v
		}
	}

	if t.log != nil {
		t.log.Debugf("HTTP %s %s\n", req.Method, req.URL)
	}

	return t.base.RoundTrip(req)
}

// joinCookies appends the first non-empty line of file to the inline
// cookie string.
func joinCookies(inline, file string) (string, error) {
	s := strings.TrimSpace(inline)
	if file == "" {
		return s, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("cookie file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if s == "" {
			return line, nil
		}
		return s + "; " + line, nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("cookie file: %w", err)
	}

	return s, nil
}

func PickUserAgent(override string) string {
	if override != "" {
		return override
	}

	return DefaultUserAgent
}
