package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/brogergvhs/se8/internal/config"

	"github.com/spf13/cobra"
)

var flagEditPrintPath bool

var configEditCmd = &cobra.Command{
	Use:   "edit [label]",
	Short: "Open the active or named config in $EDITOR",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label, err := editLabel(args)
		if err != nil {
			return err
		}

		path, err := config.ConfigPathByLabel(label)
		if err != nil {
			return err
		}

		if flagEditPrintPath {
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}

		editor := os.Getenv("VISUAL")
		if editor == "" {
			editor = os.Getenv("EDITOR")
		}
		if editor == "" {
			editor = "vi"
		}

		run := exec.CommandContext(cmd.Context(), editor, path)
		run.Stdin = os.Stdin
		run.Stdout = os.Stdout
		run.Stderr = os.Stderr

		if err := run.Run(); err != nil {
			return fmt.Errorf("%s %s: %w", editor, path, err)
		}

		return nil
	},
}

func init() {
	configEditCmd.Flags().BoolVar(&flagEditPrintPath, "path", false, "print the config path instead of opening it")
	configCmd.AddCommand(configEditCmd)
}

// editLabel is the argument, else the active profile, else a picked one.
func editLabel(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	label, err := config.CurrentLabel()
	if errors.Is(err, config.ErrNoConfig) || (err == nil && label == "") {
		return pickProfile()
	}

	return label, err
}
