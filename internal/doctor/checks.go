package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gopasspw/gitconfig"

	"github.com/dheater/viewyard/internal/config"
	"github.com/dheater/viewyard/internal/justfile"
	"github.com/dheater/viewyard/internal/view"
	"github.com/dheater/viewyard/internal/viewset"
)

// loadConfig is the shared config read used by checks that depend on
// viewset data. Checks that cannot run without it report themselves as
// skipped rather than piling a second failure onto the config check.
func loadConfig(s *Session) (*config.Config, error) {
	return config.Load(s.Env)
}

func skipped(check string) []Result {
	return []Result{pass(check, "skipped: config not loadable")}
}

// configCheck covers the three distinct config failure shapes. Only a
// missing file is auto-fixable; malformed or misshapen YAML needs a
// human because rewriting it could destroy data.
func configCheck() Check {
	const name = "config"
	return Check{Name: name, Run: func(ctx context.Context, s *Session) []Result {
		_, err := loadConfig(s)
		switch {
		case err == nil:
			return []Result{pass(name, fmt.Sprintf("config ok at %s", s.Env.ConfigPath))}
		case errors.Is(err, config.ErrConfigMissing):
			return []Result{fail(name,
				fmt.Sprintf("no config file at %s", s.Env.ConfigPath),
				"create a minimal config with an empty 'work' viewset",
				func(ctx context.Context) error {
					return config.Save(s.Env, config.Minimal())
				})}
		default:
			var perr *config.ParseError
			if errors.As(err, &perr) {
				return []Result{fail(name, err.Error(),
					fmt.Sprintf("fix the YAML syntax in %s by hand", s.Env.ConfigPath), nil)}
			}
			return []Result{fail(name, err.Error(),
				fmt.Sprintf("add a top-level 'viewsets:' mapping to %s", s.Env.ConfigPath), nil)}
		}
	}}
}

// directoryCheck ensures the source root and every viewset's directory
// skeleton exist.
func directoryCheck() Check {
	const name = "directories"
	return Check{Name: name, Run: func(ctx context.Context, s *Session) []Result {
		cfg, err := loadConfig(s)
		if err != nil {
			return skipped(name)
		}

		var results []Result
		for _, vs := range cfg.Names() {
			dir := viewset.ViewsDir(s.Env, vs)
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				results = append(results, pass(name, fmt.Sprintf("%s: %s", vs, dir)))
				continue
			}
			results = append(results, fail(name,
				fmt.Sprintf("viewset %q has no views directory at %s", vs, dir),
				"create the directory",
				func(ctx context.Context) error {
					return os.MkdirAll(dir, 0o755)
				}))
		}
		if len(results) == 0 {
			results = append(results, pass(name, "no viewsets configured"))
		}
		return results
	}}
}

// justfileCheck verifies each viewset's launcher is present and
// current. Foreign justfiles are reported but never touched.
func justfileCheck() Check {
	const name = "justfile"
	return Check{Name: name, Run: func(ctx context.Context, s *Session) []Result {
		cfg, err := loadConfig(s)
		if err != nil {
			return skipped(name)
		}

		var results []Result
		for _, vs := range cfg.Names() {
			root := viewset.Root(s.Env, vs)
			status, err := justfile.Check(root, vs)
			if err != nil {
				results = append(results, fail(name, err.Error(), "", nil))
				continue
			}
			switch status {
			case justfile.Current:
				results = append(results, pass(name, fmt.Sprintf("%s: justfile current", vs)))
			case justfile.Foreign:
				results = append(results, fail(name,
					fmt.Sprintf("%s exists but was not generated by viewyard", justfile.Path(root)),
					"remove or rename it, then run setup-justfiles", nil))
			default:
				results = append(results, fail(name,
					fmt.Sprintf("%s: justfile %s", vs, status),
					"generate the viewset justfile",
					func(ctx context.Context) error {
						return justfile.Write(root, vs)
					}))
			}
		}
		if len(results) == 0 {
			results = append(results, pass(name, "no viewsets configured"))
		}
		return results
	}}
}

// repoListCheck flags viewsets with no repositories. Repo membership
// is a user decision, so there is no auto-fix.
func repoListCheck() Check {
	const name = "repos"
	return Check{Name: name, Run: func(ctx context.Context, s *Session) []Result {
		cfg, err := loadConfig(s)
		if err != nil {
			return skipped(name)
		}

		var results []Result
		for _, vs := range cfg.Viewsets {
			if len(vs.Repos) == 0 {
				results = append(results, fail(name,
					fmt.Sprintf("viewset %q has no repositories", vs.Name),
					fmt.Sprintf("add repos to %s", s.Env.ConfigPath), nil))
				continue
			}
			results = append(results, pass(name,
				fmt.Sprintf("%s: %d repo(s)", vs.Name, len(vs.Repos))))
		}
		if len(results) == 0 {
			results = append(results, pass(name, "no viewsets configured"))
		}
		return results
	}}
}

// identityCheck verifies git has a commit identity: either a global
// user.name/user.email, or includeIf sections scoping identity to the
// viewset directories.
func identityCheck() Check {
	const name = "git-identity"
	return Check{Name: name, Run: func(ctx context.Context, s *Session) []Result {
		path := s.Env.GitConfigPath()
		gc, err := gitconfig.LoadConfig(path)
		if err != nil {
			return []Result{fail(name,
				fmt.Sprintf("cannot read %s: %v", path, err),
				"run: git config --global user.name/user.email", nil)}
		}

		if gc.IsSet("user.name") && gc.IsSet("user.email") {
			return []Result{pass(name, "global user.name and user.email set")}
		}

		// Per-directory identity via includeIf is just as good.
		cfg, cerr := loadConfig(s)
		if cerr == nil {
			for _, vs := range cfg.Names() {
				key := fmt.Sprintf("includeif.gitdir:%s/.path", viewset.Root(s.Env, vs))
				if gc.IsSet(key) {
					return []Result{pass(name,
						fmt.Sprintf("identity scoped via includeIf for %s", vs))}
				}
			}
		}

		return []Result{fail(name,
			"no git commit identity configured",
			"run: git config --global user.name '...' and git config --global user.email '...'", nil)}
	}}
}

// toolsCheck verifies required executables are installed. gh is
// optional: missing gh is reported in the message but does not fail.
func toolsCheck() Check {
	const name = "tools"
	return Check{Name: name, Run: func(ctx context.Context, s *Session) []Result {
		var results []Result
		for _, tool := range []string{"git", "just"} {
			if _, err := s.lookPath(tool); err != nil {
				results = append(results, fail(name,
					fmt.Sprintf("%s not found on PATH", tool),
					fmt.Sprintf("install %s", tool), nil))
				continue
			}
			results = append(results, pass(name, tool+" installed"))
		}
		if _, err := s.lookPath("gh"); err != nil {
			results = append(results, pass(name, "gh not installed (optional)"))
		} else {
			results = append(results, pass(name, "gh installed"))
		}
		return results
	}}
}

// contextCheck cross-checks every view's context descriptor against
// the view on disk. A mismatch means the descriptor was edited or the
// view was reshaped by hand, so there is no auto-fix.
func contextCheck() Check {
	const name = "view-context"
	return Check{Name: name, Run: func(ctx context.Context, s *Session) []Result {
		cfg, err := loadConfig(s)
		if err != nil {
			return skipped(name)
		}

		var results []Result
		for _, vs := range cfg.Names() {
			vc := viewset.Context{Name: vs, ViewsDir: viewset.ViewsDir(s.Env, vs)}
			views, err := viewset.ListViews(vc)
			if err != nil {
				results = append(results, fail(name, err.Error(), "", nil))
				continue
			}
			for _, v := range views {
				path := vc.ViewPath(v)
				repos, err := view.ActiveRepos(ctx, path)
				if err != nil {
					results = append(results, fail(name,
						fmt.Sprintf("%s/%s: %v", vs, v, err), "", nil))
					continue
				}
				problems := view.ValidateDescriptor(path, repos)
				if len(problems) == 0 {
					results = append(results, pass(name,
						fmt.Sprintf("%s/%s: descriptor consistent", vs, v)))
					continue
				}
				for _, p := range problems {
					results = append(results, fail(name,
						fmt.Sprintf("%s/%s: %s", vs, v, p),
						"recreate the view, or repair the descriptor by hand", nil))
				}
			}
		}
		if len(results) == 0 {
			results = append(results, pass(name, "no views to check"))
		}
		return results
	}}
}

// maxProbes bounds how many repository URLs the reachability check
// contacts per viewset; probing every repo of a large viewset would
// make validation unusably slow.
const maxProbes = 3

func reachabilityCheck() Check {
	const name = "reachability"
	return Check{Name: name, Run: func(ctx context.Context, s *Session) []Result {
		cfg, err := loadConfig(s)
		if err != nil {
			return skipped(name)
		}

		var results []Result
		for _, vs := range cfg.Viewsets {
			seen := map[string]bool{}
			for _, r := range vs.Repos {
				if len(seen) >= maxProbes {
					break
				}
				if seen[r.URL] {
					continue
				}
				seen[r.URL] = true
				if err := s.probe(ctx, r.URL); err != nil {
					results = append(results, fail(name,
						fmt.Sprintf("%s unreachable: %v", r.URL, err),
						"check the URL, your network, and your SSH keys", nil))
					continue
				}
				results = append(results, pass(name, r.URL+" reachable"))
			}
		}
		if len(results) == 0 {
			results = append(results, pass(name, "no repositories to probe"))
		}
		return results
	}}
}
