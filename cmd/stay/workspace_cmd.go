package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/juniperhq/stay/internal/ui"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage named store locations",
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		wc, err := loadWorkspacesConfig()
		if err != nil {
			return err
		}
		names := make([]string, 0, len(wc.Workspaces))
		for name := range wc.Workspaces {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			marker := " "
			if name == wc.Active {
				marker = "*"
			}
			fmt.Printf("%s %s\t%s\n", marker, name, ui.RenderMuted(wc.Workspaces[name].Store))
		}
		return nil
	},
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add <name> <store-path>",
	Short: "Add a workspace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wc, err := loadWorkspacesConfig()
		if err != nil {
			return err
		}
		wc.Workspaces[args[0]] = Workspace{Store: args[1]}
		return saveWorkspacesConfig(wc)
	},
}

var workspaceUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a workspace active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wc, err := loadWorkspacesConfig()
		if err != nil {
			return err
		}
		if _, ok := wc.Workspaces[args[0]]; !ok {
			return fmt.Errorf("unknown workspace %q", args[0])
		}
		wc.Active = args[0]
		return saveWorkspacesConfig(wc)
	},
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wc, err := loadWorkspacesConfig()
		if err != nil {
			return err
		}
		delete(wc.Workspaces, args[0])
		if wc.Active == args[0] {
			wc.Active = ""
		}
		return saveWorkspacesConfig(wc)
	},
}

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceAddCmd)
	workspaceCmd.AddCommand(workspaceUseCmd)
	workspaceCmd.AddCommand(workspaceRemoveCmd)
}
