package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// descriptorFile holds the context descriptor inside a view directory.
const descriptorFile = ".viewyard-context"

// Boundary is advisory workspace metadata consumed by external
// sandboxing tools. Viewyard writes it; it never enforces it.
type Boundary struct {
	AllowedPaths   []string `json:"allowed_paths"`
	ForbiddenPaths []string `json:"forbidden_paths"`
}

// Descriptor is the persisted snapshot written once at view creation.
type Descriptor struct {
	ViewName    string   `json:"view_name"`
	ViewRoot    string   `json:"view_root"`
	ActiveRepos []string `json:"active_repos"`
	Created     string   `json:"created"`
	Boundary    Boundary `json:"workspace_boundary"`
}

// WriteDescriptor records the view's identity and boundary. It is
// write-once: an existing descriptor is never replaced.
func WriteDescriptor(viewPath, name string, repos []string) error {
	target := filepath.Join(viewPath, descriptorFile)
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	abs, err := filepath.Abs(viewPath)
	if err != nil {
		return fmt.Errorf("resolve view path: %w", err)
	}
	if repos == nil {
		repos = []string{}
	}
	d := Descriptor{
		ViewName:    name,
		ViewRoot:    abs,
		ActiveRepos: repos,
		Created:     time.Now().UTC().Format(time.RFC3339),
		Boundary: Boundary{
			AllowedPaths: []string{abs, filepath.Join(abs, "**")},
			ForbiddenPaths: []string{
				"../**/views/*/",
				"../../views/*/",
			},
		},
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode descriptor: %w", err)
	}
	data = append(data, '\n')

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save descriptor: %w", err)
	}
	return nil
}

// ReadDescriptor loads a view's context descriptor. os.ErrNotExist is
// returned unwrapped-able when the view predates descriptors.
func ReadDescriptor(viewPath string) (*Descriptor, error) {
	data, err := os.ReadFile(filepath.Join(viewPath, descriptorFile))
	if err != nil {
		return nil, err
	}
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse descriptor: %w", err)
	}
	return &d, nil
}

// ValidateDescriptor cross-checks a descriptor against the view on
// disk and returns one message per mismatch.
func ValidateDescriptor(viewPath string, repos []string) []string {
	var problems []string

	d, err := ReadDescriptor(viewPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{"no context descriptor (view predates descriptors)"}
		}
		return []string{err.Error()}
	}

	if d.ViewName != filepath.Base(viewPath) {
		problems = append(problems,
			fmt.Sprintf("descriptor names view %q but directory is %q", d.ViewName, filepath.Base(viewPath)))
	}

	have := make(map[string]bool, len(repos))
	for _, r := range repos {
		have[r] = true
	}
	for _, r := range d.ActiveRepos {
		if !have[r] {
			problems = append(problems, fmt.Sprintf("descriptor lists repo %q which is not in the view", r))
		}
	}
	return problems
}
