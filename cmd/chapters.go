package cmd

import (
	"fmt"

	"github.com/brogergvhs/se8/internal/chapters"
	"github.com/brogergvhs/se8/internal/config"
	"github.com/brogergvhs/se8/internal/ui"
	"github.com/brogergvhs/se8/internal/util"

	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters <series-id>",
	Short: "List the chapters of a series, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(config.Options{})
		if err != nil {
			return err
		}

		chs, err := s.source.Chapters(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(chs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No chapters found.")
			return nil
		}

		rows := make([][]string, 0, len(chs))
		for i, c := range chs {
			rows = append(rows, []string{
				fmt.Sprint(i + 1),
				chapters.FormatNumber(c.Number),
				c.ID,
				c.Title,
				util.Resolve(s.cfg.BaseURL, c.URL),
			})
		}

		return ui.PrintTable(cmd.OutOrStdout(), []string{"#", "No.", "ID", "Title", "URL"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}
