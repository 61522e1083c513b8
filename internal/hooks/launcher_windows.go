package hooks

import (
	"os/exec"
	"syscall"
)

// setRawCmdLine hands line to cmd.exe verbatim. Go's default argument
// escaping targets the MSVC runtime rules, which cmd.exe does not follow.
func setRawCmdLine(c *exec.Cmd, line string) {
	c.SysProcAttr = &syscall.SysProcAttr{CmdLine: `cmd /S /C "` + line + `"`}
}
