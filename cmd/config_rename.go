package cmd

import (
	"fmt"

	"github.com/brogergvhs/se8/internal/config"

	"github.com/spf13/cobra"
)

var configRenameCmd = &cobra.Command{
	Use:     "rename <old_label> <new_label>",
	Aliases: []string{"mv"},
	Short:   "Rename a config profile",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := args[0], args[1]
		if from == config.DefaultLabel {
			return fmt.Errorf("the %s config cannot be renamed", config.DefaultLabel)
		}

		if err := config.RenameConfig(from, to); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Renamed config %q to %q\n", from, to)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configRenameCmd)
}
