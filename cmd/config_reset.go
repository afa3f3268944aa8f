package cmd

import (
	"fmt"

	"github.com/brogergvhs/se8/internal/config"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var configResetCmd = &cobra.Command{
	Use:   "reset [label]",
	Short: "Overwrite the active or named config with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			path string
			err  error
		)
		if len(args) == 1 {
			path, err = config.ConfigPathByLabel(args[0])
		} else {
			path, err = config.ActiveConfigPath()
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !flagResetYes && !confirm(cmd.InOrStdin(), out, "Reset "+path+" to defaults?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}

		if err := config.SaveYAML(config.DefaultConfig(), path); err != nil {
			return err
		}

		fmt.Fprintf(out, "Reset config: %s\n", path)
		return nil
	},
}

func init() {
	configResetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "do not ask for confirmation")
	configCmd.AddCommand(configResetCmd)
}
