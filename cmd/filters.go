package cmd

import (
	"fmt"
	"strconv"

	"github.com/brogergvhs/se8/internal/providers"
	"github.com/brogergvhs/se8/internal/providers/se8"
	"github.com/brogergvhs/se8/internal/ui"

	"github.com/spf13/cobra"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the option indices accepted by `se8 list`",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups := []struct {
			flag  string
			group providers.OptionGroup
		}{
			{"--tag", se8.TagOptions},
			{"--status", se8.ProgressOptions},
			{"--sort", se8.SortOptions},
		}

		for _, g := range groups {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", g.flag, g.group.Name)

			rows := make([][]string, 0, len(g.group.Options))
			for i, o := range g.group.Options {
				rows = append(rows, []string{strconv.Itoa(i), o.Label, o.Code})
			}
			if err := ui.PrintTable(cmd.OutOrStdout(), []string{"Index", "Label", "Code"}, rows); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
