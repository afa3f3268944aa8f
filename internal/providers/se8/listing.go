package se8

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/se8/internal/providers"
)

// ParseListing extracts the series cards of a category or search page.
// The markup carries no end-of-list marker, so HasMore is always true and
// the caller stops on an empty page.
func ParseListing(doc *goquery.Document) providers.MangaPage {
	out := providers.MangaPage{
		Manga:   []providers.MangaSummary{},
		HasMore: true,
	}

	doc.Find(".comic-item").Each(func(_ int, item *goquery.Selection) {
		if m, ok := parseListingItem(item); ok {
			out.Manga = append(out.Manga, m)
		}
	})

	return out
}

func parseListingItem(item *goquery.Selection) (providers.MangaSummary, bool) {
	href, ok := item.Find("a").First().Attr("href")
	if !ok {
		return providers.MangaSummary{}, false
	}

	id := lastSegment(href)
	if id == "" {
		return providers.MangaSummary{}, false
	}

	cover, _ := item.Find("a > img").First().Attr("data-original")

	return providers.MangaSummary{
		ID:    id,
		Cover: cover,
		Title: strings.TrimSpace(item.Find("p:nth-child(2) > a").First().Text()),
	}, true
}

func lastSegment(href string) string {
	parts := strings.Split(strings.TrimSpace(href), "/")

	return parts[len(parts)-1]
}
