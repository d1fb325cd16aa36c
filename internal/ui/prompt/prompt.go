// Package prompt implements the interactive terminal prompts. All
// prompts render to stderr so stdout stays pipeable, and every prompt
// has a plain line-based fallback for non-TTY stdin.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// Interactive reports whether full-screen prompts can run.
func Interactive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
}

// newProgram builds a program with the shared options: stderr output
// and a detected color profile (handles piped output and NO_COLOR).
func newProgram(m tea.Model) *tea.Program {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	return tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
}

// readLine is the non-TTY fallback: print the prompt to stderr, read
// one line from stdin.
func readLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
