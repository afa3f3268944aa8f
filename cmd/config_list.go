package cmd

import (
	"github.com/brogergvhs/se8/internal/config"
	"github.com/brogergvhs/se8/internal/ui"

	"github.com/spf13/cobra"
)

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available configs",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := config.ListConfigs()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(list))
		for _, c := range list {
			active := ""
			if c.Active {
				active = "yes"
			}
			rows = append(rows, []string{c.Label, c.Path, active})
		}

		return ui.PrintTable(cmd.OutOrStdout(), []string{"Label", "Path", "Active"}, rows)
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
}
