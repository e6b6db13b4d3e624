package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// WorkspacesConfig holds all named workspaces and tracks which one is
// active. A workspace points the console at a store document location.
type WorkspacesConfig struct {
	Active     string               `toml:"active"`
	Workspaces map[string]Workspace `toml:"workspaces"`
}

// Workspace is a named store location.
type Workspace struct {
	Store string `toml:"store"`
}

func workspacesConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "stay")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "workspaces.toml"), nil
}

func loadWorkspacesConfig() (WorkspacesConfig, error) {
	path, err := workspacesConfigPath()
	if err != nil {
		return WorkspacesConfig{}, err
	}
	var wc WorkspacesConfig
	if _, err := toml.DecodeFile(path, &wc); err != nil {
		if os.IsNotExist(err) {
			return WorkspacesConfig{Workspaces: map[string]Workspace{}}, nil
		}
		return WorkspacesConfig{}, err
	}
	if wc.Workspaces == nil {
		wc.Workspaces = map[string]Workspace{}
	}
	return wc, nil
}

func saveWorkspacesConfig(wc WorkspacesConfig) error {
	path, err := workspacesConfigPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(wc)
}

// activeWorkspace returns the active workspace, if one is configured.
func activeWorkspace() (Workspace, bool) {
	wc, err := loadWorkspacesConfig()
	if err != nil || wc.Active == "" {
		return Workspace{}, false
	}
	ws, ok := wc.Workspaces[wc.Active]
	return ws, ok
}
