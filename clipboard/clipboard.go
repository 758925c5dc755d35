// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/theme"
)

// Compile-time interface verification.
var (
	_ theme.Clipboard = (*System)(nil)
	_ theme.Clipboard = (*Command)(nil)
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard: no clipboard utility available")

// System implements Clipboard using the platform clipboard
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(content)
}

// Command implements Clipboard by piping content to an external command,
// e.g. pbcopy or "tmux load-buffer -".
type Command struct {
	Name string
	Args []string
}

// NewCommand returns a clipboard that runs name with args.
func NewCommand(name string, args ...string) *Command {
	return &Command{Name: name, Args: args}
}

// Copy writes content to the command's standard input.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
