package ports

import "os/exec"

// EditorOpener opens an indexed entry in the user's editor
type EditorOpener interface {
	// Open runs the editor on path and waits for it to exit
	Open(path string) error

	// Command returns the editor invocation without running it,
	// for callers that hand the terminal over themselves (bubbletea ExecProcess)
	Command(path string) (*exec.Cmd, error)
}
