// Package report renders series sheets for export.
package report

import (
	"io"
	"strings"

	"github.com/brogergvhs/se8/internal/chapters"
	"github.com/brogergvhs/se8/internal/providers"

	"github.com/nao1215/markdown"
)

// WriteMarkdown writes the series metadata and, when chs is non-empty, a
// chapter table.
func WriteMarkdown(w io.Writer, m providers.Manga, chs []providers.Chapter) error {
	md := markdown.NewMarkdown(w)

	title := m.Title
	if title == "" {
		title = m.ID
	}
	md.H1(title)
	md.PlainText("")

	if m.Cover != "" {
		md.PlainText("![cover](" + m.Cover + ")")
		md.PlainText("")
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", "`" + m.ID + "`"},
			{"Author", orDash(m.Author)},
			{"Status", m.Status.String()},
			{"Rating", m.ContentRating.String()},
			{"Viewer", m.Viewer.String()},
			{"URL", m.URL},
		},
	})
	md.PlainText("")

	if len(m.Categories) > 0 {
		md.H2("Categories")
		md.PlainText("")
		md.BulletList(m.Categories...)
		md.PlainText("")
	}

	if m.Description != "" {
		md.H2("Description")
		md.PlainText("")
		md.PlainText(m.Description)
		md.PlainText("")
	}

	if len(chs) > 0 {
		rows := make([][]string, 0, len(chs))
		for _, c := range chs {
			rows = append(rows, []string{chapters.FormatNumber(c.Number), escapeCell(c.Title), "`" + c.ID + "`"})
		}

		md.H2("Chapters")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"No.", "Title", "ID"},
			Rows:   rows,
		})
	}

	return md.Build()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
