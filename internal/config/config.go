// Package config manages the viewsets configuration file at
// ~/.config/viewyard/viewsets.yaml. It is the single source of truth for
// viewset membership; every mutation flow converges on Save.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dheater/viewyard/internal/env"
)

// Repository is one entry in a viewset's repo list.
type Repository struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Build string `yaml:"build,omitempty"`
	Test  string `yaml:"test,omitempty"`
}

// Viewset is a named, ordered group of repositories.
type Viewset struct {
	Name  string
	Repos []Repository
}

// HasRepo reports whether the viewset contains a repository with the
// given name.
func (v *Viewset) HasRepo(name string) bool {
	_, ok := v.Repo(name)
	return ok
}

// Repo returns the repository with the given name.
func (v *Viewset) Repo(name string) (Repository, bool) {
	for _, r := range v.Repos {
		if r.Name == name {
			return r, true
		}
	}
	return Repository{}, false
}

// AddRepo appends a repository, ignoring duplicates by name.
func (v *Viewset) AddRepo(r Repository) {
	if v.HasRepo(r.Name) {
		return
	}
	v.Repos = append(v.Repos, r)
}

// Config holds all configured viewsets in file order. File order is
// meaningful: the first viewset is the documented fallback when no
// viewset can be detected from the working directory.
type Config struct {
	Viewsets []Viewset
}

// Viewset returns the viewset with the given name.
func (c *Config) Viewset(name string) (*Viewset, bool) {
	for i := range c.Viewsets {
		if c.Viewsets[i].Name == name {
			return &c.Viewsets[i], true
		}
	}
	return nil, false
}

// Names returns the viewset names in file order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Viewsets))
	for i, v := range c.Viewsets {
		names[i] = v.Name
	}
	return names
}

// Minimal returns the smallest valid configuration, used by the
// auto-fix for a missing config file.
func Minimal() *Config {
	return &Config{Viewsets: []Viewset{{Name: "work"}}}
}

// rawViewset is the on-disk shape of a viewset body.
type rawViewset struct {
	Repos []Repository `yaml:"repos"`
}

// Load reads the viewsets configuration from the environment's config
// path. The three failure kinds are distinct because each has a
// different repair: ErrConfigMissing (file absent), *ParseError
// (malformed YAML), *StructureError (no viewsets mapping). An empty
// mapping is never silently substituted.
func Load(e env.Environment) (*Config, error) {
	data, err := os.ReadFile(e.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrConfigMissing, e.ConfigPath)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data, e.ConfigPath)
}

// Parse decodes a viewsets document, preserving viewset order.
func Parse(data []byte, path string) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if len(doc.Content) == 0 {
		return nil, &StructureError{Path: path, Reason: "file is empty"}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &StructureError{Path: path, Reason: "top level is not a mapping"}
	}

	var viewsetsNode *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "viewsets" {
			viewsetsNode = root.Content[i+1]
			break
		}
	}
	if viewsetsNode == nil {
		return nil, &StructureError{Path: path, Reason: "missing 'viewsets' key"}
	}

	cfg := &Config{}
	if viewsetsNode.Kind == yaml.ScalarNode && viewsetsNode.Tag == "!!null" {
		// "viewsets:" with no body is a valid empty store.
		return cfg, nil
	}
	if viewsetsNode.Kind != yaml.MappingNode {
		return nil, &StructureError{Path: path, Reason: "'viewsets' is not a mapping"}
	}

	for i := 0; i+1 < len(viewsetsNode.Content); i += 2 {
		name := viewsetsNode.Content[i].Value
		var raw rawViewset
		if err := viewsetsNode.Content[i+1].Decode(&raw); err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("viewset %q: %w", name, err)}
		}
		seen := make(map[string]bool, len(raw.Repos))
		for _, r := range raw.Repos {
			if seen[r.Name] {
				return nil, &StructureError{
					Path:   path,
					Reason: fmt.Sprintf("viewset %q has duplicate repo %q", name, r.Name),
				}
			}
			seen[r.Name] = true
		}
		cfg.Viewsets = append(cfg.Viewsets, Viewset{Name: name, Repos: raw.Repos})
	}

	return cfg, nil
}

// Save serializes the configuration deterministically (viewsets in
// insertion order, repos in insertion order, optional fields omitted)
// and writes it atomically via a temp file and rename. This is the only
// write path for viewset data.
func Save(e env.Environment, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(e.ConfigPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp := e.ConfigPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, e.ConfigPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Marshal renders the configuration document. Exposed for tests.
func Marshal(cfg *Config) ([]byte, error) {
	viewsets := &yaml.Node{Kind: yaml.MappingNode}
	for _, vs := range cfg.Viewsets {
		body := &yaml.Node{Kind: yaml.MappingNode}
		repos := &yaml.Node{Kind: yaml.SequenceNode}
		for _, r := range vs.Repos {
			repoNode := &yaml.Node{}
			if err := repoNode.Encode(r); err != nil {
				return nil, fmt.Errorf("encode repo %q: %w", r.Name, err)
			}
			repos.Content = append(repos.Content, repoNode)
		}
		body.Content = append(body.Content, scalarNode("repos"), repos)
		viewsets.Content = append(viewsets.Content, scalarNode(vs.Name), body)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, scalarNode("viewsets"), viewsets)

	return yaml.Marshal(root)
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
