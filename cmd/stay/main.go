package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juniperhq/stay/internal/config"
	"github.com/juniperhq/stay/internal/registry"
	"github.com/juniperhq/stay/internal/shell"
	"github.com/juniperhq/stay/internal/store/file"
	"github.com/juniperhq/stay/internal/ui"
)

var (
	storeFlag string

	cfg       *config.Config
	storePath string
	reg       *registry.Registry
)

var rootCmd = &cobra.Command{
	Use:   "stay",
	Short: "Interactive console over the stay object store",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		storePath = cfg.StorePath
		if ws, ok := activeWorkspace(); ok && ws.Store != "" {
			storePath = ws.Store
		}
		if storeFlag != "" {
			storePath = storeFlag
		}

		reg = registry.New(file.New(storePath))
		return reg.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		dispatcher := shell.NewDispatcher(reg, os.Stdout)
		sh := shell.New(dispatcher, os.Stdin, os.Stdout, shell.Options{
			Prompt:      cfg.Prompt,
			HistoryPath: cfg.HistoryPath,
			HistoryMax:  cfg.HistoryMax,
			Interactive: ui.Interactive(),
		})
		return sh.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "path to the store document (overrides config and workspace)")

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(workspaceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
