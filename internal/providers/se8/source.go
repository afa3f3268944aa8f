package se8

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/se8/internal/providers"
)

type debugLogger interface {
	Debugf(string, ...any)
}

type Source struct {
	client *http.Client
	base   string
	log    debugLogger
}

var _ providers.Source = (*Source)(nil)

// NewSource returns a Source that fetches through c. An empty base uses
// DefaultBaseURL; log may be nil.
func NewSource(c *http.Client, base string, log debugLogger) *Source {
	if base == "" {
		base = DefaultBaseURL
	}

	return &Source{
		client: c,
		base:   strings.TrimRight(base, "/"),
		log:    log,
	}
}

func (s *Source) BaseURL() string {
	return s.base
}

func (s *Source) List(ctx context.Context, filters []providers.Filter, page int) (providers.MangaPage, error) {
	q, err := CompileFilters(filters)
	if err != nil {
		return providers.MangaPage{}, err
	}

	doc, err := s.fetchDOM(ctx, ListingURL(s.base, q, page))
	if err != nil {
		return providers.MangaPage{}, err
	}

	out := ParseListing(doc)
	s.debugf("listing page %d: %d series\n", page, len(out.Manga))

	return out, nil
}

func (s *Source) Detail(ctx context.Context, mangaID string) (providers.Manga, error) {
	target := DetailURL(s.base, mangaID)

	doc, err := s.fetchDOM(ctx, target)
	if err != nil {
		return providers.Manga{}, err
	}

	return ParseDetail(doc, target), nil
}

func (s *Source) Chapters(ctx context.Context, mangaID string) ([]providers.Chapter, error) {
	target := ChapterListURL(s.base, mangaID)

	body, err := s.fetchBody(ctx, target)
	if err != nil {
		return nil, err
	}

	chapters, err := ParseChapterList(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	s.debugf("series %s: %d chapters\n", mangaID, len(chapters))

	return chapters, nil
}

// Pages fetches the reader page for chapterID. The reader URL does not
// involve the series, so mangaID is unused.
func (s *Source) Pages(ctx context.Context, _ string, chapterID string) ([]providers.Page, error) {
	doc, err := s.fetchDOM(ctx, ReaderURL(s.base, chapterID))
	if err != nil {
		return nil, err
	}

	pages := ParsePages(doc)
	s.debugf("chapter %s: %d pages\n", chapterID, len(pages))

	return pages, nil
}

// debugf logs extraction results. Requests are logged by the client.
func (s *Source) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Source) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: HTTP %d", target, resp.StatusCode)
	}

	return resp, nil
}

func (s *Source) fetchDOM(ctx context.Context, target string) (*goquery.Document, error) {
	resp, err := s.get(ctx, target)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", target, err)
	}

	return doc, nil
}

func (s *Source) fetchBody(ctx context.Context, target string) ([]byte, error) {
	resp, err := s.get(ctx, target)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}

	return data, nil
}
