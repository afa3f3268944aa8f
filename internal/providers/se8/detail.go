package se8

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/se8/internal/providers"
)

// The detail page has no reliable status, rating or layout markers. These
// are deliberate defaults, not missing selectors.
const (
	defaultStatus        = providers.StatusOngoing
	defaultContentRating = providers.RatingNsfw
	defaultViewer        = providers.ViewerScroll
)

// ParseDetail reads series metadata from a /comic/<id> page. pageURL is
// recorded as the series' canonical URL.
func ParseDetail(doc *goquery.Document, pageURL string) providers.Manga {
	id, _ := doc.Find(".j-user-collect").First().Attr("data-id")
	cover, _ := doc.Find(".de-info__cover > img").First().Attr("src")

	return providers.Manga{
		ID:            id,
		Cover:         cover,
		Title:         strings.TrimSpace(doc.Find(".j-comic-title").Text()),
		Author:        normalizeAuthors(doc.Find(".comic-author > .name > a").Text()),
		Artist:        "",
		Description:   normalizeDescription(doc.Find(".comic-intro > .intro").Text()),
		URL:           pageURL,
		Categories:    parseCategories(doc.Find(".comic-status > span:nth-child(1) > b > a")),
		Status:        defaultStatus,
		ContentRating: defaultContentRating,
		Viewer:        defaultViewer,
	}
}

// normalizeAuthors turns "A&amp B & C" into "A, B, C". The site renders
// multiple authors joined by an ampersand with a broken entity.
func normalizeAuthors(raw string) string {
	raw = strings.ReplaceAll(raw, "&amp", "&")

	var names []string
	for part := range strings.SplitSeq(raw, "&") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}

	return strings.Join(names, ", ")
}

func normalizeDescription(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "&hellip", "…")
}

func parseCategories(sel *goquery.Selection) []string {
	out := []string{}
	sel.Each(func(_ int, a *goquery.Selection) {
		if t := strings.TrimSpace(a.Text()); t != "" {
			out = append(out, t)
		}
	})

	return out
}
