package editor

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Reveal shows a folder in the system file manager
func Reveal(path string) error {
	cmd, err := revealCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

func revealCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("explorer", path), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
