package git

import (
	"context"
	"strings"
)

// Submodule is one entry reported by `git submodule status`.
type Submodule struct {
	SHA  string
	Path string
	Ref  string // branch/tag in parentheses, empty if not reported
}

// AddSubmodule adds the repository at url as a submodule named path
// inside the repository at dir.
func AddSubmodule(ctx context.Context, dir, url, path string) error {
	return runGit(ctx, dir, "submodule", "add", url, path)
}

// SubmoduleStatus lists the submodules of the repository at dir.
func SubmoduleStatus(ctx context.Context, dir string) ([]Submodule, error) {
	out, err := outputGit(ctx, dir, "submodule", "status")
	if err != nil {
		return nil, err
	}
	return ParseSubmoduleStatus(string(out)), nil
}

// ParseSubmoduleStatus parses `git submodule status` output. Lines look
// like " <sha> <path> (<ref>)"; the leading character flags state
// (space = ok, - = uninitialized, + = out of sync) and is dropped here.
func ParseSubmoduleStatus(out string) []Submodule {
	var subs []Submodule
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, " -+U"))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		sub := Submodule{SHA: fields[0], Path: fields[1]}
		if len(fields) >= 3 {
			sub.Ref = strings.Trim(fields[2], "()")
		}
		subs = append(subs, sub)
	}
	return subs
}
