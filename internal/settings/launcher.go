// Package settings launches the external appearance-settings tool.
package settings

import (
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-ps"
)

// DefaultTool is the settings application opened for appearance tweaks.
const DefaultTool = "cosmic-settings"

// Open launches the appearance page of the settings tool. The spawn is
// skipped when an instance is already running.
func Open(logger hclog.Logger, tool string) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if tool == "" {
		tool = DefaultTool
	}

	running, err := isRunning(tool)
	if err != nil {
		logger.Debug("process scan failed, launching anyway", "error", err)
	}
	if running {
		logger.Debug("settings tool already running", "tool", tool)
		return nil
	}

	cmd := exec.Command(tool, "appearance") // #nosec G204 - tool name comes from configuration
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", tool, err)
	}
	// Detach; the settings tool outlives us and reaps itself.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %s: %w", tool, err)
	}
	return nil
}

// isRunning reports whether a process with the given executable name exists.
func isRunning(name string) (bool, error) {
	processes, err := ps.Processes()
	if err != nil {
		return false, fmt.Errorf("failed to get process list: %w", err)
	}
	for _, p := range processes {
		if p.Executable() == name {
			return true, nil
		}
	}
	return false, nil
}
