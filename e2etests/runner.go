// Package e2etests runs a built my-reboot binary against a sandbox state
// dir. The tests are skipped unless MY_REBOOT_CMD names the binary.
package e2etests

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"my-reboot/internal/configs"
	"my-reboot/internal/kvstorage/grubenv"
	"my-reboot/internal/kvstorage/properties"
	"my-reboot/internal/state"
)

// Runner executes my-reboot commands against a sandbox directory.
type Runner struct {
	Cmd string // path to the my-reboot binary
}

// SetupSandbox creates a state dir holding an empty boot block and the
// given configs.
func (r *Runner) SetupSandbox(dir string, cfgs map[string]string) error {
	block, err := grubenv.Encode(nil)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, state.GrubenvFilename), block, 0o644); err != nil {
		return fmt.Errorf("writing grubenv: %w", err)
	}
	return WriteConfigs(dir, cfgs)
}

// WriteConfigs replaces the configs file of the sandbox.
func WriteConfigs(dir string, cfgs map[string]string) error {
	return properties.New(filepath.Join(dir, configs.Filename), cfgs).Save()
}

// RunResult holds the output of a command execution.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes my-reboot with args. The sandbox is passed as the state
// dir and reboot actions are never carried out.
func (r *Runner) Run(sandbox string, args ...string) RunResult {
	cmd := exec.Command(r.Cmd, args...)
	cmd.Env = append(os.Environ(),
		"MY_REBOOT_STATE_DIR="+sandbox,
		"NO_REBOOT_ACTION=1",
		"MY_REBOOT_CONFIG=",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
