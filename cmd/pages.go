package cmd

import (
	"fmt"

	"github.com/brogergvhs/se8/internal/config"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages <chapter-id>",
	Short: "Print the image URLs of a chapter, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(config.Options{})
		if err != nil {
			return err
		}

		pages, err := s.source.Pages(cmd.Context(), "", args[0])
		if err != nil {
			return err
		}

		for _, p := range pages {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", p.Index, p.URL)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
