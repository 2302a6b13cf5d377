package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"jd/internal/ports"
)

// ErrNoEditor means neither the configuration nor the environment names an editor
var ErrNoEditor = errors.New("no editor found: set \"editor\" in the config or $EDITOR")

var _ ports.EditorOpener = (*Opener)(nil)

// Opener implements ports.EditorOpener
type Opener struct {
	configured string
	lookPath   func(string) (string, error)
	getenv     func(string) string
}

// NewOpener creates an opener. configured takes precedence over $VISUAL and
// $EDITOR and may carry arguments, e.g. "code --wait".
func NewOpener(configured string) *Opener {
	return &Opener{
		configured: configured,
		lookPath:   exec.LookPath,
		getenv:     os.Getenv,
	}
}

// Open runs the editor on path in the foreground
func (o *Opener) Open(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command builds the editor invocation for path
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.editorArgs()
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// editorArgs returns the editor command split into fields
func (o *Opener) editorArgs() []string {
	for _, candidate := range []string{o.configured, o.getenv("VISUAL"), o.getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}

	for _, name := range []string{"nvim", "vim", "vi", "nano"} {
		if p, err := o.lookPath(name); err == nil {
			return []string{p}
		}
	}
	return nil
}
