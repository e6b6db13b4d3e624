package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/juniperhq/stay/internal/shell"
)

var execCmd = &cobra.Command{
	Use:   "exec <line>...",
	Short: "Run console command lines without the interactive prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dispatcher := shell.NewDispatcher(reg, os.Stdout)
		for _, line := range args {
			if err := dispatcher.Dispatch(line); err != nil {
				if errors.Is(err, shell.ErrExit) {
					return nil
				}
				return err
			}
		}
		return nil
	},
}
