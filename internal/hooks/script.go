package hooks

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/raphi011/hookmaster/internal/config"
)

// Marker identifies scripts written by hookmaster.
const Marker = "# installed by hookmaster"

// Script returns the delegating hook script for hook name. binary is the
// command used to invoke hookmaster, usually just "hookmaster" from PATH.
//
// prepare-commit-msg delegates to the dedicated subcommand, every other hook
// to "run <name>". Git's hook arguments are forwarded unchanged.
func Script(name, binary string) string {
	bin := binary
	if strings.ContainsAny(bin, " \t'\"$`\\") {
		bin = shellQuote(bin)
	}

	invocation := "run " + name
	if name == config.PrepareCommitMsg {
		invocation = config.PrepareCommitMsg
	}

	return fmt.Sprintf("#!/bin/sh\n%s\nexec %s %s \"$@\"\n", Marker, bin, invocation)
}

// IsManaged reports whether content is a script written by hookmaster.
func IsManaged(content []byte) bool {
	for _, line := range bytes.Split(content, []byte("\n")) {
		if string(bytes.TrimSpace(line)) == Marker {
			return true
		}
	}
	return false
}
