package platform

import (
	"fmt"
	"os"
	"os/exec"
)

// Relaunch starts a new copy of the running executable with the same
// arguments. The caller is expected to quit afterwards.
func Relaunch() error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	command := exec.Command(execPath, os.Args[1:]...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err := command.Start(); err != nil {
		return fmt.Errorf("start %s: %w", execPath, err)
	}
	return command.Process.Release()
}
