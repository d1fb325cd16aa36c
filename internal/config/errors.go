package config

import (
	"errors"
	"fmt"
)

// ErrConfigMissing indicates the config file does not exist. Callers
// can offer to create it.
var ErrConfigMissing = errors.New("viewsets config not found")

// ParseError indicates the config file exists but is not valid YAML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StructureError indicates valid YAML with the wrong shape, such as a
// missing viewsets mapping or duplicate repo names.
type StructureError struct {
	Path   string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.Reason)
}
