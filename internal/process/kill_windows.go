//go:build windows

// Package process stops browser processes left behind by the PDF renderer.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup force-kills pid and its child tree with taskkill. Errors
// are ignored; the launcher's own kill runs afterwards.
func KillProcessGroup(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- fixed binary, numeric pid
}
