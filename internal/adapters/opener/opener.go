package opener

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener shows a directory in the system file manager
type Opener struct {
	goos string
}

// New creates an Opener for the running operating system
func New() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// Open starts the file manager on dir without waiting for it to exit
func (o *Opener) Open(dir string) error {
	cmd, err := o.Command(dir)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}
	go cmd.Wait()
	return nil
}

// Command returns the exec.Cmd that opens dir
func (o *Opener) Command(dir string) (*exec.Cmd, error) {
	switch o.goos {
	case "darwin":
		return exec.Command("open", dir), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", dir), nil
	case "windows":
		return exec.Command("explorer", dir), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
