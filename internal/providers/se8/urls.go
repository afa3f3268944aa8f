package se8

import (
	"fmt"
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://se8.us/index.php"

// ListingURL returns the search URL when q has free text, otherwise the
// category browse URL. The search endpoint takes no facets.
func ListingURL(base string, q Query, page int) string {
	if q.Text != "" {
		return fmt.Sprintf("%s/search/%s/%d", base, escapeTerm(q.Text), page)
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("/category")

	if q.Tag != "" {
		b.WriteString("/tags/")
		b.WriteString(q.Tag)
	}
	if q.Status != "" {
		b.WriteString("/finish/")
		b.WriteString(q.Status)
	}

	sort := q.Sort
	if sort == "" {
		sort = defaultSort
	}

	fmt.Fprintf(&b, "/order/%s/page/%d", sort, page)

	return b.String()
}

// escapeTerm percent-encodes everything but unreserved characters, so
// "+", "&" and "=" reach the site literally. Spaces become %20.
func escapeTerm(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func DetailURL(base, mangaID string) string {
	return base + "/comic/" + mangaID
}

func ChapterListURL(base, mangaID string) string {
	return base + "/api/comic/chapter?mid=" + mangaID
}

func ReaderURL(base, chapterID string) string {
	return base + "/chapter/" + chapterID
}
