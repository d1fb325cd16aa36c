package git

import (
	"context"
	"time"
)

// DefaultProbeTimeout bounds network-touching git calls.
const DefaultProbeTimeout = 10 * time.Second

// LsRemote probes url for reachability by listing its heads under a
// timeout. A nil error means the remote answered.
func LsRemote(ctx context.Context, url string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return runGit(probeCtx, "", "ls-remote", "--heads", url)
}

// CloneShallow clones url into path with depth 1.
func CloneShallow(ctx context.Context, url, path string) error {
	return runGit(ctx, "", "clone", "--depth", "1", url, path)
}
