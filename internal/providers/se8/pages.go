package se8

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/se8/internal/providers"
)

// ParsePages lists the lazy-loaded images of a reader page. Index is the
// image's position among all matched nodes, so a skipped image leaves a gap.
func ParsePages(doc *goquery.Document) []providers.Page {
	out := []providers.Page{}

	doc.Find("div[id^='pic'] > img").Each(func(i int, img *goquery.Selection) {
		src, ok := img.Attr("data-original")
		src = strings.TrimSpace(src)
		if !ok || src == "" {
			return
		}

		out = append(out, providers.Page{Index: i, URL: src})
	})

	return out
}
