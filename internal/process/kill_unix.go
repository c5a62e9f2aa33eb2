//go:build !windows

// Package process stops browser processes left behind by the PDF renderer.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking
// Chrome's renderer and GPU children down with it. Errors are ignored; the
// launcher's own kill runs afterwards.
func KillProcessGroup(pid int) {
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
