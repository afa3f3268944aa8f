package cmd

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/se8/internal/config"
	"github.com/brogergvhs/se8/internal/providers"
	"github.com/brogergvhs/se8/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagMarkdown     bool
	flagWithChapters bool
)

func init() {
	infoCmd := &cobra.Command{
		Use:   "info <series-id>",
		Short: "Show series details",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	infoCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "print a markdown sheet instead of plain text")
	infoCmd.Flags().BoolVar(&flagWithChapters, "with-chapters", false, "include the chapter list in the markdown sheet")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := openSession(config.Options{})
	if err != nil {
		return err
	}

	m, err := s.source.Detail(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if flagMarkdown {
		var chs []providers.Chapter
		if flagWithChapters {
			if chs, err = s.source.Chapters(cmd.Context(), args[0]); err != nil {
				return err
			}
		}
		return report.WriteMarkdown(out, m, chs)
	}

	fmt.Fprintf(out, "%s\n\n", m.Title)
	fmt.Fprintf(out, " -id: %s\n", m.ID)
	fmt.Fprintf(out, " -author: %s\n", m.Author)
	fmt.Fprintf(out, " -categories: %s\n", strings.Join(m.Categories, ", "))
	fmt.Fprintf(out, " -status: %s\n", m.Status)
	fmt.Fprintf(out, " -rating: %s\n", m.ContentRating)
	fmt.Fprintf(out, " -viewer: %s\n", m.Viewer)
	fmt.Fprintf(out, " -cover: %s\n", m.Cover)
	fmt.Fprintf(out, " -url: %s\n", m.URL)
	if m.Description != "" {
		fmt.Fprintf(out, "\n%s\n", m.Description)
	}

	return nil
}
