//go:build !windows

package hooks

import "os/exec"

func setRawCmdLine(*exec.Cmd, string) {}
