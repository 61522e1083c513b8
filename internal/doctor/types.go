package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEnv represents tools missing from PATH.
	CategoryEnv IssueCategory = "env"
	// CategoryConfig represents problems with githooks.toml.
	CategoryConfig IssueCategory = "config"
	// CategoryHooks represents problems with installed hook scripts.
	CategoryHooks IssueCategory = "hooks"
)

// FixAction names what --fix does for an issue.
type FixAction string

const (
	FixNone    FixAction = ""
	FixInstall FixAction = "install" // (re)write the delegating script
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // hook name, tool or config file
	Description string        // human-readable description
	FixAction   FixAction     // what --fix would do
	Category    IssueCategory // issue category
}

// IssueStats tracks counts by category.
type IssueStats struct {
	HooksInstalled int // up to date hookmaster scripts
	HooksMissing   int
	HooksOutdated  int
	HooksForeign   int // hooks written by another tool
	ConfigWarnings int // unknown keys in githooks.toml
}

// Report is the result of a doctor run.
type Report struct {
	Issues []Issue
	Stats  IssueStats
	Fixed  int
	Failed int
}

// Remaining returns the number of issues not fixed by this run.
func (r Report) Remaining() int {
	return len(r.Issues) - r.Fixed
}
