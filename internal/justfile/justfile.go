// Package justfile generates the per-viewset justfile that fronts the
// viewyard CLI with short recipes.
package justfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// markerPrefix tags a justfile as generated by viewyard; the suffix is
// the viewset name. A file without the marker belongs to the user and
// is never touched.
const markerPrefix = "# viewyard:"

const template = `%s%s

# Show available view commands
default:
    @just --list

# List all views in this viewset
list:
    viewyard list --viewset %s

# Create a new view in this viewset
create view-name:
    viewyard create {{view-name}} --viewset %s

# Delete a view from this viewset
delete view-name:
    viewyard delete {{view-name}}

# Show information about a view
info view-name:
    viewyard info {{view-name}}

# Add a repository to an existing view
add-repo view-name repo-name:
    viewyard add-repo {{view-name}} {{repo-name}}

# Validate viewyard setup
validate:
    viewyard validate-comprehensive
`

// Status describes what is at a viewset's justfile path.
type Status int

const (
	// Missing means no justfile exists.
	Missing Status = iota
	// Current means a viewyard justfile for this viewset is in place.
	Current
	// Stale means a viewyard justfile exists but its marker names a
	// different viewset or content drifted from the template.
	Stale
	// Foreign means a justfile exists that viewyard did not generate.
	Foreign
)

func (s Status) String() string {
	switch s {
	case Missing:
		return "missing"
	case Current:
		return "current"
	case Stale:
		return "stale"
	case Foreign:
		return "not managed by viewyard"
	}
	return "unknown"
}

// Path returns the justfile location for a viewset root.
func Path(viewsetRoot string) string {
	return filepath.Join(viewsetRoot, "justfile")
}

// Render produces the justfile content for a viewset.
func Render(viewset string) string {
	return fmt.Sprintf(template, markerPrefix, viewset, viewset, viewset)
}

// Check reports the state of the justfile at a viewset root.
func Check(viewsetRoot, viewset string) (Status, error) {
	data, err := os.ReadFile(Path(viewsetRoot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Missing, nil
		}
		return Missing, fmt.Errorf("read justfile: %w", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, markerPrefix) {
		return Foreign, nil
	}
	if content != Render(viewset) {
		return Stale, nil
	}
	return Current, nil
}

// Write installs the justfile for a viewset. Missing and stale files
// are (re)written; a foreign justfile is left alone and reported as an
// error so the user decides.
func Write(viewsetRoot, viewset string) error {
	status, err := Check(viewsetRoot, viewset)
	if err != nil {
		return err
	}
	switch status {
	case Current:
		return nil
	case Foreign:
		return fmt.Errorf("%s exists and was not generated by viewyard; remove it first", Path(viewsetRoot))
	}
	if err := os.MkdirAll(viewsetRoot, 0o755); err != nil {
		return fmt.Errorf("create viewset directory: %w", err)
	}
	if err := os.WriteFile(Path(viewsetRoot), []byte(Render(viewset)), 0o644); err != nil {
		return fmt.Errorf("write justfile: %w", err)
	}
	return nil
}
