// Package env resolves the fixed filesystem locations viewyard works
// against (home, source root, config file) once per invocation so the
// rest of the code never reads ambient process state.
package env

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment holds the resolved base paths for one invocation.
type Environment struct {
	// Home is the user's home directory.
	Home string
	// SourceRoot is the directory viewset roots live under (default ~/src).
	SourceRoot string
	// ConfigPath is the viewsets config file (default ~/.config/viewyard/viewsets.yaml).
	ConfigPath string
}

// Detect resolves the environment from the current process.
// VIEWYARD_ROOT overrides the source root, which tests rely on.
func Detect() (Environment, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Environment{}, fmt.Errorf("get home directory: %w", err)
	}

	root := filepath.Join(home, "src")
	if override := os.Getenv("VIEWYARD_ROOT"); override != "" {
		root = override
	}

	return Environment{
		Home:       home,
		SourceRoot: root,
		ConfigPath: filepath.Join(home, ".config", "viewyard", "viewsets.yaml"),
	}, nil
}

// GitConfigPath returns the user's global git config file.
func (e Environment) GitConfigPath() string {
	return filepath.Join(e.Home, ".gitconfig")
}
