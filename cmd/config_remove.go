package cmd

import (
	"fmt"

	"github.com/brogergvhs/se8/internal/config"

	"github.com/spf13/cobra"
)

var forceRemove bool

var configRemoveCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]
		out := cmd.OutOrStdout()

		active, _ := config.CurrentLabel()
		force := forceRemove

		if label == active && !force {
			if !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Config %q is currently active. Remove it anyway?", label)) {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
			force = true
		}

		if err := config.RemoveConfig(label, force); err != nil {
			return err
		}

		if label == active {
			fmt.Fprintf(out, "Fallback switched to: %s\n", config.DefaultLabel)
		}
		fmt.Fprintf(out, "Removed configuration %q\n", label)
		return nil
	},
}

func init() {
	configRemoveCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "remove even if active, without asking")
	configCmd.AddCommand(configRemoveCmd)
}
