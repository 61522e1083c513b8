package commitmsg

import (
	"fmt"
	"os"
	"strings"

	"github.com/raphi011/hookmaster/internal/branch"
	"github.com/raphi011/hookmaster/internal/storage"
)

// Result describes the outcome of RewriteFile.
type Result struct {
	Branch  branch.Parsed
	Message string // synthesized message, empty when unchanged
	Changed bool
}

// RewriteFile composes a default message for branchName and writes it into
// the commit message file at path. Git's commented template, if present, is
// kept below the message. The file is left untouched when Compose keeps the
// existing content.
func RewriteFile(path, branchName string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read commit message: %w", err)
	}
	existing := string(data)

	parsed := branch.Parse(branchName)
	composed := Compose(parsed, existing)
	if composed == existing {
		return Result{Branch: parsed}, nil
	}

	content := composed + "\n"
	if template := strings.TrimLeft(existing, "\n"); template != "" {
		content += "\n" + template
	}

	if err := storage.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return Result{}, fmt.Errorf("write commit message: %w", err)
	}

	return Result{Branch: parsed, Message: composed, Changed: true}, nil
}
