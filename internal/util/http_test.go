package util

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, _ ...any) {
	l.lines = append(l.lines, format)
}

func TestNewHTTPClientHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	cookieFile := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(cookieFile, []byte("\n  cf_clearance=abc  \nignored=1\n"), 0644))

	logger := &recordingLogger{}
	client, err := NewHTTPClient(HTTPClientOptions{
		Timeout:     5 * time.Second,
		UserAgent:   "se8-test",
		Referer:     "https://se8.us/",
		Cookie:      "a=1",
		CookieFile:  cookieFile,
		DebugLogger: logger,
	})
	require.NoError(t, err)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "se8-test", got.Get("User-Agent"))
	assert.Equal(t, "https://se8.us/", got.Get("Referer"))
	assert.Equal(t, "a=1; cf_clearance=abc", got.Get("Cookie"))
	assert.Equal(t, defaultAcceptLanguage, got.Get("Accept-Language"))
	assert.NotEmpty(t, logger.lines)
}

func TestNewHTTPClientMissingCookieFile(t *testing.T) {
	t.Parallel()

	_, err := NewHTTPClient(HTTPClientOptions{
		CookieFile: filepath.Join(t.TempDir(), "absent.txt"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cookie file")
}

func TestJoinCookies(t *testing.T) {
	t.Parallel()

	got, err := joinCookies("  a=1 ", "")
	require.NoError(t, err)
	assert.Equal(t, "a=1", got)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n\n"), 0644))

	got, err = joinCookies("", empty)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRoundTripperKeepsExplicitReferer(t *testing.T) {
	t.Parallel()

	var referer string
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		referer = r.Header.Get("Referer")
	}))
	defer srv.Close()

	client, err := NewHTTPClient(HTTPClientOptions{Referer: "https://se8.us/"})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Referer", "https://se8.us/index.php/chapter/1")

	resp, err := client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "https://se8.us/index.php/chapter/1", referer)
}

func TestPickUserAgent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultUserAgent, PickUserAgent(""))
	assert.Equal(t, "custom", PickUserAgent("custom"))
}
